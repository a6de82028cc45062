package domain

// Node represents one node in a page's static document tree.
//
// A node is either an element (Tag != "") or a text node (Tag == "" and Text
// set). Attributes keep insertion order so a tree always renders to the same
// bytes.
type Node struct {
	Tag   string
	Attrs []Attr
	Text  string
	Kids  []*Node
}

// Attr is a single key/value attribute of an element node.
type Attr struct {
	Key   string
	Value string
}

// El creates an element node with the given children.
func El(tag string, kids ...*Node) *Node {
	return &Node{Tag: tag, Kids: kids}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == ""
}

// With appends an attribute and returns the node for chaining.
func (n *Node) With(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Attr returns the value of the first attribute with the given key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children and returns the node for chaining.
func (n *Node) Append(kids ...*Node) *Node {
	n.Kids = append(n.Kids, kids...)
	return n
}

// Walk visits n and every descendant in document order. It stops early if
// visit returns false for a subtree (children of that node are skipped).
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, k := range n.Kids {
		Walk(k, visit)
	}
}

// TextContent concatenates all text nodes under n in document order.
func TextContent(n *Node) string {
	var out string
	Walk(n, func(c *Node) bool {
		if c.IsText() {
			out += c.Text
		}
		return true
	})
	return out
}
