package domain

import "strings"

// Link is a hyperlink found in a page's document tree.
type Link struct {
	PageSlug string
	Href     string
	Text     string
}

// LinkClass categorizes a link target for integrity checking.
type LinkClass string

const (
	// LinkFragment points at an anchor on the same page ("#quick-start").
	LinkFragment LinkClass = "fragment"
	// LinkSite points at another path of the hosting documentation set ("/installation#requirements").
	LinkSite LinkClass = "site"
	// LinkExternal points outside the site ("https://...").
	LinkExternal LinkClass = "external"
	// LinkOther is anything else (mailto:, empty, ...). Not checked.
	LinkOther LinkClass = "other"
)

// Class classifies the link by its href shape.
func (l Link) Class() LinkClass {
	switch {
	case strings.HasPrefix(l.Href, "#"):
		return LinkFragment
	case strings.HasPrefix(l.Href, "/"):
		return LinkSite
	case strings.HasPrefix(l.Href, "http://"), strings.HasPrefix(l.Href, "https://"):
		return LinkExternal
	default:
		return LinkOther
	}
}

// CollectLinks returns every a[href] under root, in document order.
func CollectLinks(slug string, root *Node) []Link {
	var out []Link
	Walk(root, func(n *Node) bool {
		if n.Tag == "a" {
			if href, ok := n.Attr("href"); ok {
				out = append(out, Link{PageSlug: slug, Href: href, Text: TextContent(n)})
			}
		}
		return true
	})
	return out
}

// CollectAnchors returns every id attribute under root, in document order.
func CollectAnchors(root *Node) []string {
	var out []string
	Walk(root, func(n *Node) bool {
		if id, ok := n.Attr("id"); ok && id != "" {
			out = append(out, id)
		}
		return true
	})
	return out
}

// LinkResult is the outcome of checking a single link.
type LinkResult struct {
	Link    Link
	Class   LinkClass
	Passed  bool
	Message string
}

// LinkReport aggregates link-check results across pages.
type LinkReport struct {
	Results []LinkResult
}

// Failures returns the number of failed link checks.
func (r LinkReport) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}
