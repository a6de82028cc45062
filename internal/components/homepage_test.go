package components

import (
	"reflect"
	"strings"
	"testing"

	"github.com/taurgis/aegis-docsite/internal/domain"
)

func TestHomePageHasExactlyOneTitle(t *testing.T) {
	body := NewHomePage().Body()

	var titles []string
	domain.Walk(body, func(n *domain.Node) bool {
		if n.Tag == "h1" {
			titles = append(titles, domain.TextContent(n))
		}
		return true
	})

	if len(titles) != 1 {
		t.Fatalf("expected exactly one h1, got %d", len(titles))
	}
	if titles[0] != "MCP Aegis" {
		t.Fatalf("expected title %q, got %q", "MCP Aegis", titles[0])
	}
}

func TestHomePageRendersSamplesVerbatim(t *testing.T) {
	body := NewHomePage().Body()

	// language tag -> code text found on the page
	found := map[string]string{}
	domain.Walk(body, func(n *domain.Node) bool {
		if n.Tag == "code" {
			if class, ok := n.Attr("class"); ok && strings.HasPrefix(class, "language-") {
				found[strings.TrimPrefix(class, "language-")] = domain.TextContent(n)
			}
		}
		return true
	})

	cases := []struct {
		lang   string
		source string
	}{
		{"bash", ShellQuickStartSample},
		{"yaml", YAMLToolsListSample},
		{"javascript", JSLifecycleSample},
	}
	for _, c := range cases {
		got, ok := found[c.lang]
		if !ok {
			t.Fatalf("expected a %s code block on the homepage", c.lang)
		}
		if got != c.source {
			t.Fatalf("%s sample not verbatim:\ngot:  %q\nwant: %q", c.lang, got, c.source)
		}
	}
}

func TestHomePageFragmentLinksResolve(t *testing.T) {
	page := NewHomePage()
	body := page.Body()

	anchors := map[string]bool{}
	for _, id := range domain.CollectAnchors(body) {
		anchors[id] = true
	}

	for _, l := range domain.CollectLinks(page.Slug(), body) {
		if l.Class() != domain.LinkFragment {
			continue
		}
		if !anchors[strings.TrimPrefix(l.Href, "#")] {
			t.Errorf("fragment link %q has no matching anchor on the page", l.Href)
		}
	}
}

func TestHomePageSectionAnchorsPresent(t *testing.T) {
	body := NewHomePage().Body()

	anchors := map[string]bool{}
	for _, id := range domain.CollectAnchors(body) {
		anchors[id] = true
	}

	for _, want := range []string{
		"mcp-aegis",
		"quick-start",
		"features",
		"documentation",
		"why-aegis",
		"production-verified",
		"ai-agent-support",
		"testing-approaches",
		"get-started",
		"by-the-numbers",
	} {
		if !anchors[want] {
			t.Errorf("expected anchor %q on the homepage", want)
		}
	}
}

func TestHomePageBodyIsDeterministic(t *testing.T) {
	a := NewHomePage().Body()
	b := NewHomePage().Body()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected two renders of the homepage to produce identical trees")
	}
}

func TestHomePageSiteLinksStayInDocsSet(t *testing.T) {
	page := NewHomePage()
	links := domain.CollectLinks(page.Slug(), page.Body())

	if len(links) == 0 {
		t.Fatalf("expected links on the homepage")
	}

	for _, l := range links {
		switch l.Class() {
		case domain.LinkSite, domain.LinkFragment, domain.LinkExternal:
			// checked elsewhere
		default:
			t.Errorf("unexpected link shape %q", l.Href)
		}
	}
}
