package ports

import "github.com/taurgis/aegis-docsite/internal/domain"

// PageRenderer turns a resolved document tree into a complete HTML document.
type PageRenderer interface {
	RenderDocument(site domain.Site, title string, body *domain.Node) (string, error)
}
