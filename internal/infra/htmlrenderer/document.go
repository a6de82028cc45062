package htmlrenderer

import (
	"github.com/taurgis/aegis-docsite/internal/domain"
)

// RenderDocument wraps a page body in the site chrome and renders the full
// HTML document, doctype included.
func (r *Renderer) RenderDocument(site domain.Site, title string, body *domain.Node) (string, error) {
	doc := domain.El("html",
		head(site, title),
		domain.El("body",
			domain.El("main", body),
			footer(site),
		),
	).With("lang", "en")

	out, err := r.RenderNode(doc)
	if err != nil {
		return "", err
	}
	return "<!doctype html>\n" + out + "\n", nil
}

func head(site domain.Site, title string) *domain.Node {
	full := title
	if site.Name != "" && title != site.Name {
		full = title + " — " + site.Name
	}

	return domain.El("head",
		domain.El("meta").With("charset", "utf-8"),
		domain.El("meta").With("name", "viewport").With("content", "width=device-width, initial-scale=1"),
		domain.El("title", domain.Text(full)),
		domain.El("link").With("rel", "stylesheet").With("href", "/assets/site.css"),
	)
}

func footer(site domain.Site) *domain.Node {
	return domain.El("footer",
		domain.El("p", domain.Text(site.Name)),
	)
}
