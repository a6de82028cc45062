package domain

// Site represents the docsite configuration loaded from docsite.yaml.
type Site struct {
	Name    string
	BaseURL string
	Vars    Vars

	Paths PathsConfig
	Links LinkPolicy

	// Anchors is the registry of paths known to exist in the hosting
	// documentation set (e.g. "/installation#requirements"). Site-absolute
	// links must resolve against it.
	Anchors []string
}

type PathsConfig struct {
	OutputDir  string
	ReportsDir string
}

// LinkPolicy controls how the link checker treats external links.
type LinkPolicy struct {
	CheckExternal bool
	TimeoutMS     int
}

// DefaultSite provides sane defaults if docsite.yaml is partially missing.
func DefaultSite() Site {
	return Site{
		Name: "MCP Aegis",
		Vars: Vars{},
		Paths: PathsConfig{
			OutputDir:  "dist",
			ReportsDir: ".docsite/reports",
		},
		Links: LinkPolicy{
			CheckExternal: false,
			TimeoutMS:     5000,
		},
	}
}

// HasAnchor reports whether path is present in the anchor registry.
func (s Site) HasAnchor(path string) bool {
	for _, a := range s.Anchors {
		if a == path {
			return true
		}
	}
	return false
}
