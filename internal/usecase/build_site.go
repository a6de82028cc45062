package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

// PageBuildResult records the outcome of rendering one page.
type PageBuildResult struct {
	Slug  string
	Path  string
	Bytes int
}

// BuildReport summarizes a full site build.
type BuildReport struct {
	Pages     []PageBuildResult
	StartedAt time.Time
	EndedAt   time.Time
}

type BuildSite struct {
	pages    []domain.Page
	renderer ports.PageRenderer
	writer   ports.SiteWriter
	resolver *domain.VarResolver
}

type BuildOption func(*BuildSite)

// WithBuildResolver overrides the variable resolver (useful for tests).
func WithBuildResolver(vr *domain.VarResolver) BuildOption {
	return func(uc *BuildSite) {
		if vr != nil {
			uc.resolver = vr
		}
	}
}

func NewBuildSite(pages []domain.Page, renderer ports.PageRenderer, writer ports.SiteWriter, opts ...BuildOption) *BuildSite {
	uc := &BuildSite{
		pages:    pages,
		renderer: renderer,
		writer:   writer,
		resolver: domain.NewVarResolver(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute resolves {{vars}} in every page, renders it, and writes the result.
// Site vars come from docsite.yaml; a missing variable aborts the build.
func (uc *BuildSite) Execute(ctx context.Context, site domain.Site) (BuildReport, error) {
	report := BuildReport{
		StartedAt: time.Now(),
		Pages:     make([]PageBuildResult, 0, len(uc.pages)),
	}

	rt := uc.resolver.NewRuntime(site.Vars)

	for _, page := range uc.pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		body, err := rt.ResolveNode(page.Body())
		if err != nil {
			return report, &domain.OpError{
				Op:   "buildsite.resolve",
				Kind: kindFrom(err),
				Path: page.Slug(),
				Err:  err,
			}
		}

		html, err := uc.renderer.RenderDocument(site, page.Title(), body)
		if err != nil {
			return report, err
		}

		path, err := uc.writer.WritePage(page.Slug(), html)
		if err != nil {
			return report, err
		}

		report.Pages = append(report.Pages, PageBuildResult{
			Slug:  page.Slug(),
			Path:  path,
			Bytes: len(html),
		})
	}

	report.EndedAt = time.Now()
	return report, nil
}

func kindFrom(err error) domain.ErrorKind {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return domain.KindExecution
}
