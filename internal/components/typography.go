// Package components holds the site's content pages and the typography and
// layout primitives they compose. Every constructor returns a plain
// domain.Node tree; nothing here touches I/O.
package components

import "github.com/taurgis/aegis-docsite/internal/domain"

// H1 renders the page title. A page carries exactly one.
func H1(id, text string) *domain.Node {
	return domain.El("h1", domain.Text(text)).With("id", id)
}

// H2 renders a section heading with an in-page anchor id.
func H2(id, text string) *domain.Node {
	return domain.El("h2", domain.Text(text)).With("id", id)
}

// H3 renders a subsection heading with an in-page anchor id.
func H3(id, text string) *domain.Node {
	return domain.El("h3", domain.Text(text)).With("id", id)
}

// PageSubtitle renders the lead paragraph under the page title.
func PageSubtitle(text string) *domain.Node {
	return domain.El("p", domain.Text(text)).With("class", "page-subtitle")
}

// Para renders a paragraph from inline children.
func Para(kids ...*domain.Node) *domain.Node {
	return domain.El("p", kids...)
}

// T is shorthand for an inline text node.
func T(s string) *domain.Node {
	return domain.Text(s)
}

// Strong renders bold inline text.
func Strong(s string) *domain.Node {
	return domain.El("strong", domain.Text(s))
}

// CodeBlock renders a fenced source listing with a language tag for syntax
// highlighting. The source is kept verbatim as a single text node.
func CodeBlock(lang string, source string) *domain.Node {
	return domain.El("pre",
		domain.El("code", domain.Text(source)).With("class", "language-"+lang),
	).With("class", "code-block")
}

// InlineCode renders a short inline code span.
func InlineCode(s string) *domain.Node {
	return domain.El("code", domain.Text(s))
}

// Badge renders a small status pill (version, license, CI).
func Badge(text string) *domain.Node {
	return domain.El("span", domain.Text(text)).With("class", "badge")
}

// BadgeRow groups badges under the title.
func BadgeRow(badges ...*domain.Node) *domain.Node {
	return domain.El("div", badges...).With("class", "badge-row")
}

// LinkTo renders an anchor element.
func LinkTo(href string, text string) *domain.Node {
	return domain.El("a", domain.Text(text)).With("href", href)
}

// List renders an unordered list; each item becomes an <li>.
func List(items ...*domain.Node) *domain.Node {
	lis := make([]*domain.Node, 0, len(items))
	for _, it := range items {
		lis = append(lis, domain.El("li", it))
	}
	return domain.El("ul", lis...)
}

// Item groups inline children for a list entry.
func Item(kids ...*domain.Node) *domain.Node {
	return domain.El("span", kids...)
}

// Card renders a titled content card.
func Card(title string, kids ...*domain.Node) *domain.Node {
	body := append([]*domain.Node{
		domain.El("h4", domain.Text(title)).With("class", "card-title"),
	}, kids...)
	return domain.El("div", body...).With("class", "card")
}

// Grid lays cards out in columns.
func Grid(cols string, kids ...*domain.Node) *domain.Node {
	return domain.El("div", kids...).With("class", "grid grid-"+cols)
}

// Callout renders an emphasized block with a title and body content.
func Callout(title string, kids ...*domain.Node) *domain.Node {
	body := append([]*domain.Node{
		domain.El("p", domain.Text(title)).With("class", "callout-title"),
	}, kids...)
	return domain.El("div", body...).With("class", "callout")
}

// Columns renders a two-column comparison block.
func Columns(left *domain.Node, right *domain.Node) *domain.Node {
	return domain.El("div",
		domain.El("div", left).With("class", "column"),
		domain.El("div", right).With("class", "column"),
	).With("class", "columns")
}

// Stat renders one entry of the statistics grid.
func Stat(value string, label string) *domain.Node {
	return domain.El("div",
		domain.El("span", domain.Text(value)).With("class", "stat-value"),
		domain.El("span", domain.Text(label)).With("class", "stat-label"),
	).With("class", "stat")
}

// Section wraps a page section.
func Section(kids ...*domain.Node) *domain.Node {
	return domain.El("section", kids...)
}
