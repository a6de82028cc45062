package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type fakeProber struct {
	results map[string]ports.ProbeResult
	calls   []string
}

func (p *fakeProber) Probe(_ context.Context, url string) ports.ProbeResult {
	p.calls = append(p.calls, url)
	if r, ok := p.results[url]; ok {
		return r
	}
	return ports.ProbeResult{StatusCode: 200}
}

type fakeStore struct {
	saved *domain.LinkReport
	fail  error
}

func (s *fakeStore) SaveLinkReport(r domain.LinkReport) (string, error) {
	if s.fail != nil {
		return "", s.fail
	}
	s.saved = &r
	return "report-1", nil
}

func linkPage(slug string, body *domain.Node) stubPage {
	return stubPage{slug: slug, title: slug, body: func() *domain.Node { return body }}
}

func TestCheckLinksFragmentResolution(t *testing.T) {
	body := domain.El("article",
		domain.El("h2", domain.Text("Quick Start")).With("id", "quick-start"),
		domain.El("a", domain.Text("ok")).With("href", "#quick-start"),
		domain.El("a", domain.Text("broken")).With("href", "#missing"),
	)

	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, nil, nil)
	report, _, err := uc.Execute(context.Background(), domain.DefaultSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if !report.Results[0].Passed {
		t.Fatalf("expected #quick-start to resolve: %s", report.Results[0].Message)
	}
	if report.Results[1].Passed {
		t.Fatalf("expected #missing to fail")
	}
	if report.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", report.Failures())
	}
}

func TestCheckLinksSiteRegistry(t *testing.T) {
	body := domain.El("article",
		domain.El("a", domain.Text("install")).With("href", "/installation"),
		domain.El("a", domain.Text("deep")).With("href", "/installation#requirements"),
		domain.El("a", domain.Text("gone")).With("href", "/nowhere"),
	)

	site := domain.DefaultSite()
	site.Anchors = []string{"/installation", "/installation#requirements"}

	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, nil, nil)
	report, _, err := uc.Execute(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Results[0].Passed || !report.Results[1].Passed {
		t.Fatalf("expected registered paths to pass: %+v", report.Results[:2])
	}
	if report.Results[2].Passed {
		t.Fatalf("expected unregistered path to fail")
	}
}

func TestCheckLinksExternalDisabledByPolicy(t *testing.T) {
	body := domain.El("article",
		domain.El("a", domain.Text("repo")).With("href", "https://github.com/taurgis/mcp-aegis"),
	)

	prober := &fakeProber{}
	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, prober, nil)

	site := domain.DefaultSite()
	site.Links.CheckExternal = false

	report, _, err := uc.Execute(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Results[0].Passed {
		t.Fatalf("expected external link to pass when probing is disabled")
	}
	if len(prober.calls) != 0 {
		t.Fatalf("expected no probes, got %v", prober.calls)
	}
}

func TestCheckLinksExternalProbe(t *testing.T) {
	body := domain.El("article",
		domain.El("a", domain.Text("ok")).With("href", "https://good.example"),
		domain.El("a", domain.Text("bad")).With("href", "https://bad.example"),
		domain.El("a", domain.Text("down")).With("href", "https://down.example"),
	)

	prober := &fakeProber{results: map[string]ports.ProbeResult{
		"https://good.example": {StatusCode: 204},
		"https://bad.example":  {StatusCode: 404},
		"https://down.example": {Err: errors.New("dial timeout")},
	}}

	site := domain.DefaultSite()
	site.Links.CheckExternal = true

	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, prober, nil)
	report, _, err := uc.Execute(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Results[0].Passed {
		t.Fatalf("expected 204 to pass: %s", report.Results[0].Message)
	}
	if report.Results[1].Passed {
		t.Fatalf("expected 404 to fail")
	}
	if report.Results[2].Passed {
		t.Fatalf("expected probe error to fail")
	}
}

func TestCheckLinksSavesReport(t *testing.T) {
	body := domain.El("article",
		domain.El("a", domain.Text("x")).With("href", "#top"),
	)

	store := &fakeStore{}
	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, nil, store)

	_, id, err := uc.Execute(context.Background(), domain.DefaultSite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "report-1" {
		t.Fatalf("expected saved report id, got %q", id)
	}
	if store.saved == nil || len(store.saved.Results) != 1 {
		t.Fatalf("expected report to be persisted")
	}
}

func TestCheckLinksStoreError(t *testing.T) {
	saveErr := errors.New("readonly fs")
	body := domain.El("article", domain.El("a", domain.Text("x")).With("href", "#top"))

	uc := NewCheckLinks([]domain.Page{linkPage("home", body)}, nil, &fakeStore{fail: saveErr})
	_, _, err := uc.Execute(context.Background(), domain.DefaultSite())
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
