// Package sitewriter persists rendered pages under the workspace output dir.
package sitewriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type Writer struct {
	rootDir   string
	outputDir string
}

func NewWriter(root string, outputDir string) *Writer {
	if strings.TrimSpace(outputDir) == "" {
		outputDir = domain.DefaultSite().Paths.OutputDir
	}
	return &Writer{rootDir: root, outputDir: outputDir}
}

var _ ports.SiteWriter = (*Writer)(nil)

// WritePage writes <root>/<output_dir>/<slug>.html and returns the path.
// Slugs must be plain names; path separators are rejected so output can
// never escape the output dir.
func (w *Writer) WritePage(slug string, html string) (string, error) {
	if strings.TrimSpace(slug) == "" || strings.ContainsAny(slug, `/\`) || slug == ".." {
		return "", &domain.OpError{
			Op:   "sitewriter.write",
			Kind: domain.KindInvalidConfig,
			Path: slug,
			Err:  fmt.Errorf("%w: bad page slug", domain.ErrInvalidConfig),
		}
	}

	dir := filepath.Join(w.rootDir, w.outputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "sitewriter.write",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	path := filepath.Join(dir, slug+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "sitewriter.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}
