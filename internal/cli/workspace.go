package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taurgis/aegis-docsite/internal/components"
	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/infra/htmlrenderer"
	"github.com/taurgis/aegis-docsite/internal/infra/linkprobe"
	"github.com/taurgis/aegis-docsite/internal/infra/reportstore"
	"github.com/taurgis/aegis-docsite/internal/infra/sitewriter"
	"github.com/taurgis/aegis-docsite/internal/infra/workspacefinder"
	"github.com/taurgis/aegis-docsite/internal/infra/yamlsite"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type workspaceCtx struct {
	root string
	site domain.Site

	pages []domain.Page

	renderer ports.PageRenderer
	writer   ports.SiteWriter
	prober   ports.LinkProber
	store    ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	var loader ports.SiteLoader = yamlsite.NewLoader()
	site, err := loader.LoadSite(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		site:     site,
		pages:    components.Pages(),
		renderer: htmlrenderer.New(),
		writer:   sitewriter.NewWriter(root, site.Paths.OutputDir),
		prober:   linkprobe.NewWithTimeout(time.Duration(site.Links.TimeoutMS) * time.Millisecond),
		store:    reportstore.NewJSONStore(root, site.Paths.ReportsDir),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `aegis-docsite init`): %w", wd, err)
	}
	return root, nil
}
