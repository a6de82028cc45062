package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

// --- printBuild ---

func TestPrintBuild_Pretty(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	report := usecase.BuildReport{
		StartedAt: started,
		EndedAt:   started.Add(42 * time.Millisecond),
		Pages: []usecase.PageBuildResult{
			{Slug: "home", Path: "dist/home.html", Bytes: 12345},
		},
	}

	var buf bytes.Buffer
	if err := printBuild(&buf, report, "pretty"); err != nil {
		t.Fatalf("printBuild error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Built 1 page(s)") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "dist/home.html") {
		t.Errorf("missing page path:\n%s", out)
	}
}

func TestPrintBuild_JSON(t *testing.T) {
	report := usecase.BuildReport{
		Pages: []usecase.PageBuildResult{{Slug: "home", Path: "dist/home.html", Bytes: 10}},
	}

	var buf bytes.Buffer
	if err := printBuild(&buf, report, "json"); err != nil {
		t.Fatalf("printBuild error: %v", err)
	}

	var decoded usecase.BuildReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Pages) != 1 || decoded.Pages[0].Slug != "home" {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
}

func TestPrintBuild_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printBuild(&buf, usecase.BuildReport{}, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

// --- printLinkReport ---

func sampleLinkReport() domain.LinkReport {
	return domain.LinkReport{Results: []domain.LinkResult{
		{
			Link:    domain.Link{PageSlug: "home", Href: "#quick-start", Text: "Quick Start"},
			Class:   domain.LinkFragment,
			Passed:  true,
			Message: "anchor #quick-start found",
		},
		{
			Link:    domain.Link{PageSlug: "home", Href: "/missing"},
			Class:   domain.LinkSite,
			Passed:  false,
			Message: "/missing not registered in docs set",
		},
	}}
}

func TestPrintLinkReport_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printLinkReport(&buf, sampleLinkReport(), "links-20260301-120000", "pretty"); err != nil {
		t.Fatalf("printLinkReport error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Checked 2 link(s), 1 broken") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "links-20260301-120000") {
		t.Errorf("missing report id:\n%s", out)
	}
	if !strings.Contains(out, "/missing") {
		t.Errorf("missing broken link line:\n%s", out)
	}
}

func TestPrintLinkReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printLinkReport(&buf, sampleLinkReport(), "r-1", "json"); err != nil {
		t.Fatalf("printLinkReport error: %v", err)
	}

	var payload struct {
		ReportID string `json:"report_id"`
		Failures int    `json:"failures"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if payload.ReportID != "r-1" || payload.Failures != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

// --- printSampleResults ---

func TestPrintSampleResults_Pretty(t *testing.T) {
	results := []domain.SampleResult{
		{Sample: "tools-list", Check: "method", Passed: true, Message: "ok"},
		{Sample: "tools-list", Check: "id", Passed: false, Message: "mismatch"},
	}

	var buf bytes.Buffer
	if err := printSampleResults(&buf, results, "pretty"); err != nil {
		t.Fatalf("printSampleResults error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Verified 2 check(s), 1 failed") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "tools-list / id: mismatch") {
		t.Errorf("missing failure line:\n%s", out)
	}
}

func TestPrintSampleResults_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printSampleResults(&buf, nil, "yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitFlag(t *testing.T) {
	tmp := t.TempDir()

	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("resolveWorkspaceRoot error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected %s, got %s", tmp, got)
	}
}
