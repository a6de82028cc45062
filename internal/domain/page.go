package domain

// Page is a parameterless content component. Body must be pure: no I/O, no
// clock, no external state. Calling it twice yields trees that render to
// identical bytes.
type Page interface {
	Slug() string
	Title() string
	Body() *Node
}

// PageRef is a lightweight reference to a registered page.
type PageRef struct {
	Slug  string
	Title string
}
