package components

import (
	"testing"

	"github.com/taurgis/aegis-docsite/internal/domain"
)

func TestHeadingsCarryAnchorIDs(t *testing.T) {
	cases := []struct {
		node *domain.Node
		tag  string
	}{
		{H1("top", "Title"), "h1"},
		{H2("section", "Section"), "h2"},
		{H3("sub", "Sub"), "h3"},
	}
	for _, c := range cases {
		if c.node.Tag != c.tag {
			t.Errorf("expected tag %s, got %s", c.tag, c.node.Tag)
		}
		if _, ok := c.node.Attr("id"); !ok {
			t.Errorf("%s: expected an id attribute", c.tag)
		}
	}
}

func TestCodeBlockShape(t *testing.T) {
	n := CodeBlock("yaml", "a: 1")

	if n.Tag != "pre" {
		t.Fatalf("expected pre, got %s", n.Tag)
	}
	if len(n.Kids) != 1 || n.Kids[0].Tag != "code" {
		t.Fatalf("expected pre > code, got %+v", n.Kids)
	}

	class, _ := n.Kids[0].Attr("class")
	if class != "language-yaml" {
		t.Fatalf("expected language-yaml class, got %q", class)
	}
	if got := domain.TextContent(n); got != "a: 1" {
		t.Fatalf("expected verbatim source, got %q", got)
	}
}

func TestListWrapsItems(t *testing.T) {
	n := List(Item(T("one")), Item(T("two")))

	if n.Tag != "ul" || len(n.Kids) != 2 {
		t.Fatalf("expected ul with 2 items, got %s with %d", n.Tag, len(n.Kids))
	}
	for _, k := range n.Kids {
		if k.Tag != "li" {
			t.Fatalf("expected li, got %s", k.Tag)
		}
	}
}

func TestLinkTo(t *testing.T) {
	n := LinkTo("/installation", "Install")

	href, _ := n.Attr("href")
	if n.Tag != "a" || href != "/installation" {
		t.Fatalf("unexpected link node: %+v", n)
	}
	if domain.TextContent(n) != "Install" {
		t.Fatalf("expected link text, got %q", domain.TextContent(n))
	}
}
