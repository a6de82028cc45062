// Package htmlrenderer renders domain document trees to HTML.
//
// Rendering is deterministic: attributes keep insertion order, indentation is
// fixed, and no clock or randomness is consulted. The same tree always
// produces the same bytes.
package htmlrenderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

const indentUnit = "  "

// Tags rendered without a closing tag.
var voidTags = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"link": true,
	"meta": true,
}

// Tags whose children go on their own indented lines. Everything else is
// rendered inline so text content (headings, paragraphs, code) stays exact.
var blockTags = map[string]bool{
	"html":    true,
	"head":    true,
	"body":    true,
	"main":    true,
	"article": true,
	"section": true,
	"footer":  true,
	"div":     true,
	"ul":      true,
	"ol":      true,
}

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

var _ ports.PageRenderer = (*Renderer)(nil)

// RenderNode renders a single tree starting at depth zero.
func (r *Renderer) RenderNode(n *domain.Node) (string, error) {
	if n == nil {
		return "", &domain.OpError{
			Op:   "htmlrenderer.render",
			Kind: domain.KindRender,
			Err:  fmt.Errorf("%w: nil node", domain.ErrRender),
		}
	}

	var b strings.Builder
	if err := r.writeNode(&b, n, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) writeNode(b *strings.Builder, n *domain.Node, depth int) error {
	if n == nil {
		return nil
	}

	if n.IsText() {
		b.WriteString(html.EscapeString(n.Text))
		return nil
	}

	b.WriteString("<")
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}

	if voidTags[n.Tag] {
		if len(n.Kids) > 0 {
			return &domain.OpError{
				Op:   "htmlrenderer.render",
				Kind: domain.KindRender,
				Err:  fmt.Errorf("%w: void element <%s> cannot have children", domain.ErrRender, n.Tag),
			}
		}
		b.WriteString(">")
		return nil
	}

	b.WriteString(">")

	if blockTags[n.Tag] && len(n.Kids) > 0 {
		inner := strings.Repeat(indentUnit, depth+1)
		for _, k := range n.Kids {
			b.WriteString("\n")
			b.WriteString(inner)
			if err := r.writeNode(b, k, depth+1); err != nil {
				return err
			}
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indentUnit, depth))
	} else {
		for _, k := range n.Kids {
			if err := r.writeNode(b, k, depth); err != nil {
				return err
			}
		}
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
	return nil
}
