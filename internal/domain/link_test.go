package domain

import "testing"

func TestLinkClass(t *testing.T) {
	cases := []struct {
		href string
		want LinkClass
	}{
		{"#quick-start", LinkFragment},
		{"/installation#requirements", LinkSite},
		{"https://github.com/taurgis/mcp-aegis", LinkExternal},
		{"http://example.com", LinkExternal},
		{"mailto:hi@example.com", LinkOther},
		{"", LinkOther},
	}
	for _, c := range cases {
		if got := (Link{Href: c.href}).Class(); got != c.want {
			t.Errorf("Class(%q) = %s, want %s", c.href, got, c.want)
		}
	}
}

func TestCollectLinksAndAnchors(t *testing.T) {
	tree := El("div",
		El("h2", Text("Quick Start")).With("id", "quick-start"),
		El("p",
			El("a", Text("Installation")).With("href", "/installation"),
			El("a", Text("top")).With("href", "#quick-start"),
		),
		El("h3", Text("Patterns")).With("id", "pattern-matching"),
	)

	links := CollectLinks("home", tree)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Href != "/installation" || links[0].Text != "Installation" {
		t.Fatalf("unexpected first link: %+v", links[0])
	}
	if links[1].PageSlug != "home" {
		t.Fatalf("expected page slug to propagate, got %+v", links[1])
	}

	anchors := CollectAnchors(tree)
	if len(anchors) != 2 || anchors[0] != "quick-start" || anchors[1] != "pattern-matching" {
		t.Fatalf("unexpected anchors: %v", anchors)
	}
}

func TestLinkReportFailures(t *testing.T) {
	r := LinkReport{Results: []LinkResult{
		{Passed: true},
		{Passed: false},
		{Passed: false},
	}}
	if got := r.Failures(); got != 2 {
		t.Fatalf("expected 2 failures, got %d", got)
	}
}
