package ports

// SiteWriter persists rendered pages under the site's output directory.
type SiteWriter interface {
	WritePage(slug string, html string) (path string, err error)
}
