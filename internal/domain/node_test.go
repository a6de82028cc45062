package domain

import "testing"

func TestElWithAttrsKeepsInsertionOrder(t *testing.T) {
	n := El("a", Text("docs")).With("href", "#quick-start").With("class", "nav-link")

	if len(n.Attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(n.Attrs))
	}
	if n.Attrs[0].Key != "href" || n.Attrs[1].Key != "class" {
		t.Fatalf("expected insertion order [href class], got %+v", n.Attrs)
	}

	href, ok := n.Attr("href")
	if !ok || href != "#quick-start" {
		t.Fatalf("expected href #quick-start, got %q (ok=%v)", href, ok)
	}
	if _, ok := n.Attr("id"); ok {
		t.Fatalf("expected missing attr to report ok=false")
	}
}

func TestWalkVisitsDocumentOrder(t *testing.T) {
	tree := El("div",
		El("h2", Text("Features")).With("id", "features"),
		El("ul",
			El("li", Text("one")),
			El("li", Text("two")),
		),
	)

	var tags []string
	Walk(tree, func(n *Node) bool {
		if !n.IsText() {
			tags = append(tags, n.Tag)
		}
		return true
	})

	want := []string{"div", "h2", "ul", "li", "li"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d element nodes, got %d (%v)", len(want), len(tags), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, tags)
		}
	}
}

func TestWalkSkipsSubtreeWhenVisitReturnsFalse(t *testing.T) {
	tree := El("div",
		El("pre", El("code", Text("inside"))),
		El("p", Text("after")),
	)

	var visited []string
	Walk(tree, func(n *Node) bool {
		if n.Tag == "pre" {
			visited = append(visited, "pre")
			return false
		}
		if !n.IsText() {
			visited = append(visited, n.Tag)
		}
		return true
	})

	for _, tag := range visited {
		if tag == "code" {
			t.Fatalf("expected code subtree to be skipped, visited %v", visited)
		}
	}
}

func TestTextContentConcatenates(t *testing.T) {
	tree := El("p",
		Text("Run "),
		El("code", Text("aegis init")),
		Text(" to scaffold."),
	)

	got := TextContent(tree)
	want := "Run aegis init to scaffold."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
