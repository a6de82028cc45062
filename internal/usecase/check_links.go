package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type CheckLinks struct {
	pages    []domain.Page
	prober   ports.LinkProber
	store    ports.ReportStore
	resolver *domain.VarResolver
}

type CheckOption func(*CheckLinks)

// WithCheckResolver overrides the variable resolver (useful for tests).
func WithCheckResolver(vr *domain.VarResolver) CheckOption {
	return func(uc *CheckLinks) {
		if vr != nil {
			uc.resolver = vr
		}
	}
}

// NewCheckLinks builds the link-integrity usecase. prober and store are
// optional: without a prober external links are skipped, without a store the
// report is not persisted.
func NewCheckLinks(pages []domain.Page, prober ports.LinkProber, store ports.ReportStore, opts ...CheckOption) *CheckLinks {
	uc := &CheckLinks{
		pages:    pages,
		prober:   prober,
		store:    store,
		resolver: domain.NewVarResolver(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks every link on every page:
//   - fragment links must resolve to an anchor on the same page
//   - site-absolute links must resolve against the site anchor registry
//   - external links are probed only when site policy enables it and a
//     prober is wired
//
// It returns the report and the id it was saved under (empty if unsaved).
func (uc *CheckLinks) Execute(ctx context.Context, site domain.Site) (domain.LinkReport, string, error) {
	report := domain.LinkReport{}

	rt := uc.resolver.NewRuntime(site.Vars)

	for _, page := range uc.pages {
		if err := ctx.Err(); err != nil {
			return report, "", err
		}

		body, err := rt.ResolveNode(page.Body())
		if err != nil {
			return report, "", fmt.Errorf("page %q: %w", page.Slug(), err)
		}

		anchors := map[string]bool{}
		for _, id := range domain.CollectAnchors(body) {
			anchors[id] = true
		}

		for _, link := range domain.CollectLinks(page.Slug(), body) {
			res := uc.checkOne(ctx, site, link, anchors)
			report.Results = append(report.Results, res)
		}
	}

	id := ""
	if uc.store != nil {
		savedID, err := uc.store.SaveLinkReport(report)
		if err != nil {
			return report, "", err
		}
		id = savedID
	}

	return report, id, nil
}

func (uc *CheckLinks) checkOne(ctx context.Context, site domain.Site, link domain.Link, anchors map[string]bool) domain.LinkResult {
	res := domain.LinkResult{Link: link, Class: link.Class()}

	switch res.Class {
	case domain.LinkFragment:
		id := strings.TrimPrefix(link.Href, "#")
		if anchors[id] {
			res.Passed = true
			res.Message = fmt.Sprintf("anchor #%s found on page %q", id, link.PageSlug)
		} else {
			res.Message = fmt.Sprintf("anchor #%s missing on page %q", id, link.PageSlug)
		}

	case domain.LinkSite:
		path := link.Href
		if i := strings.IndexByte(path, '#'); i >= 0 {
			path = path[:i]
		}
		if site.HasAnchor(link.Href) || site.HasAnchor(path) {
			res.Passed = true
			res.Message = fmt.Sprintf("%s registered in docs set", link.Href)
		} else {
			res.Message = fmt.Sprintf("%s not registered in docs set", link.Href)
		}

	case domain.LinkExternal:
		if !site.Links.CheckExternal || uc.prober == nil {
			res.Passed = true
			res.Message = "external link (probe disabled)"
			return res
		}
		probe := uc.prober.Probe(ctx, link.Href)
		if probe.Err != nil {
			res.Message = fmt.Sprintf("probe failed: %v", probe.Err)
		} else if probe.StatusCode >= 200 && probe.StatusCode < 400 {
			res.Passed = true
			res.Message = fmt.Sprintf("status %d", probe.StatusCode)
		} else {
			res.Message = fmt.Sprintf("unexpected status %d", probe.StatusCode)
		}

	default:
		res.Passed = true
		res.Message = "not checked"
	}

	return res
}
