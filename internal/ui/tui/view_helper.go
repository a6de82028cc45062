package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderPageRefs(refs []domain.PageRef) string {
	if len(refs) == 0 {
		return "(no pages registered)"
	}

	var b strings.Builder
	for _, r := range refs {
		b.WriteString("- ")
		b.WriteString(r.Slug)
		b.WriteString("  (")
		b.WriteString(r.Title)
		b.WriteString(")\n")
	}
	return b.String()
}

func renderBuildReport(report usecase.BuildReport) string {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Built %d page(s) in %s\n\n", len(report.Pages), total.Round(time.Millisecond))
	for _, p := range report.Pages {
		fmt.Fprintf(&b, "- %s\n    %s (%d bytes)\n", p.Slug, p.Path, p.Bytes)
	}
	return b.String()
}

func renderLinkReport(t Theme, report domain.LinkReport, id string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked %d link(s), %d broken\n", len(report.Results), report.Failures())
	if id != "" {
		fmt.Fprintf(&b, "Report: %s\n", id)
	}
	b.WriteString("\n")

	for _, r := range report.Results {
		mark := t.Good.Render("✓")
		if !r.Passed {
			mark = t.Bad.Render("✗")
		}
		fmt.Fprintf(&b, "%s [%s] %s\n    %s\n", mark, r.Class, clampString(r.Link.Href, 60), r.Message)
	}
	return b.String()
}

func renderSampleResults(t Theme, results []domain.SampleResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Verified %d check(s), %d failed\n\n", len(results), usecase.CountSampleFailures(results))

	for _, r := range results {
		mark := t.Good.Render("✓")
		if !r.Passed {
			mark = t.Bad.Render("✗")
		}
		fmt.Fprintf(&b, "%s %s / %s\n    %s\n", mark, r.Sample, r.Check, clampString(r.Message, 70))
	}
	return b.String()
}
