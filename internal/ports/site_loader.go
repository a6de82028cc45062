package ports

import "github.com/taurgis/aegis-docsite/internal/domain"

// SiteLoader loads the site configuration from a source (e.g., filesystem).
type SiteLoader interface {
	LoadSite(root string) (domain.Site, error)
}
