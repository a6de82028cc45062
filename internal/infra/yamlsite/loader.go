// Package yamlsite loads the docsite.yaml site configuration.
package yamlsite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type Loader struct {
	configFile string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{configFile: "docsite.yaml"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithConfigFile(name string) Option {
	return func(l *Loader) { l.configFile = name }
}

var _ ports.SiteLoader = (*Loader)(nil)

// LoadSite reads docsite.yaml from root and applies defaults on top of
// whatever is missing.
func (l *Loader) LoadSite(root string) (domain.Site, error) {
	path := filepath.Join(root, l.configFile)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Site{}, &domain.OpError{
			Op:   "yamlsite.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlSite
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Site{}, &domain.OpError{
			Op:   "yamlsite.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

type yamlSite struct {
	Site struct {
		Name    string            `yaml:"name"`
		BaseURL string            `yaml:"base_url"`
		Vars    map[string]string `yaml:"vars"`

		Paths struct {
			OutputDir  string `yaml:"output_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Links struct {
			CheckExternal *bool `yaml:"check_external"`
			TimeoutMS     int   `yaml:"timeout_ms"`
		} `yaml:"links"`

		Anchors []string `yaml:"anchors"`
	} `yaml:"site"`
}

func mapAndValidate(path string, ys yamlSite) (domain.Site, error) {
	site := domain.DefaultSite()

	if name := strings.TrimSpace(ys.Site.Name); name != "" {
		site.Name = name
	}
	site.BaseURL = strings.TrimSpace(ys.Site.BaseURL)

	if ys.Site.Vars != nil {
		site.Vars = domain.Merge(site.Vars, domain.Vars(ys.Site.Vars))
	}

	if ys.Site.Paths.OutputDir != "" {
		site.Paths.OutputDir = ys.Site.Paths.OutputDir
	}
	if ys.Site.Paths.ReportsDir != "" {
		site.Paths.ReportsDir = ys.Site.Paths.ReportsDir
	}

	if ys.Site.Links.CheckExternal != nil {
		site.Links.CheckExternal = *ys.Site.Links.CheckExternal
	}
	if ys.Site.Links.TimeoutMS != 0 {
		if ys.Site.Links.TimeoutMS < 0 {
			return domain.Site{}, invalidField(path, "links.timeout_ms", "must be positive")
		}
		site.Links.TimeoutMS = ys.Site.Links.TimeoutMS
	}

	for i, a := range ys.Site.Anchors {
		if !strings.HasPrefix(a, "/") {
			return domain.Site{}, invalidField(path,
				fmt.Sprintf("anchors[%d]", i), "anchor paths must start with /")
		}
	}
	site.Anchors = ys.Site.Anchors

	return site, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsite.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: field %s: %s", domain.ErrInvalidConfig, field, msg),
	}
}
