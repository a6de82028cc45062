// Package reportstore persists link-check reports as JSON artifacts.
package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

const defaultReportsDir = ".docsite/reports"

type JSONStore struct {
	rootDir    string
	reportsDir string
	now        func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, reportsDir string, opts ...Option) *JSONStore {
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:    root,
		reportsDir: reportsDir,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

type reportDTO struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Failures  int             `json:"failures"`
	Results   []linkResultDTO `json:"results"`
}

type linkResultDTO struct {
	Page    string `json:"page"`
	Href    string `json:"href"`
	Class   string `json:"class"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

func (s *JSONStore) SaveLinkReport(report domain.LinkReport) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.save",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	id := "links-" + s.now().UTC().Format("20060102-150405")

	dto := reportDTO{
		ID:        id,
		CreatedAt: s.now().UTC(),
		Failures:  report.Failures(),
		Results:   make([]linkResultDTO, 0, len(report.Results)),
	}
	for _, r := range report.Results {
		dto.Results = append(dto.Results, linkResultDTO{
			Page:    r.Link.PageSlug,
			Href:    r.Link.Href,
			Class:   string(r.Class),
			Passed:  r.Passed,
			Message: r.Message,
		})
	}

	b, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.save",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	path := filepath.Join(dir, id+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return id, nil
}
