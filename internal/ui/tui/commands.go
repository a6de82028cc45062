package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taurgis/aegis-docsite/internal/components"
	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/infra/htmlrenderer"
	"github.com/taurgis/aegis-docsite/internal/infra/linkprobe"
	"github.com/taurgis/aegis-docsite/internal/infra/reportstore"
	"github.com/taurgis/aegis-docsite/internal/infra/sitewriter"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(root, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdListPages() tea.Cmd {
	return func() tea.Msg {
		var refs []domain.PageRef
		for _, p := range components.Pages() {
			refs = append(refs, domain.PageRef{Slug: p.Slug(), Title: p.Title()})
		}
		return pagesLoadedMsg{refs: refs}
	}
}

func cmdBuildSite(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		log := depsLogger(deps)
		log.Info("build.start", "workspace", root)

		if deps.SiteLoader == nil {
			return buildDoneMsg{err: errors.New("SiteLoader is nil")}
		}

		site, err := deps.SiteLoader.LoadSite(root)
		if err != nil {
			log.Error("build.load_site.failed", "err", err)
			return buildDoneMsg{err: err}
		}

		uc := usecase.NewBuildSite(
			components.Pages(),
			htmlrenderer.New(),
			sitewriter.NewWriter(root, site.Paths.OutputDir),
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		report, err := uc.Execute(ctx, site)
		if err != nil {
			log.Error("build.failed", "err", err)
		} else {
			log.Info("build.ok", "pages", len(report.Pages))
		}
		return buildDoneMsg{report: report, err: err}
	}
}

func cmdCheckLinks(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		log := depsLogger(deps)
		log.Info("check.start", "workspace", root)

		if deps.SiteLoader == nil {
			return checkDoneMsg{err: errors.New("SiteLoader is nil")}
		}

		site, err := deps.SiteLoader.LoadSite(root)
		if err != nil {
			log.Error("check.load_site.failed", "err", err)
			return checkDoneMsg{err: err}
		}

		timeout := time.Duration(site.Links.TimeoutMS) * time.Millisecond

		uc := usecase.NewCheckLinks(
			components.Pages(),
			linkprobe.NewWithTimeout(timeout),
			reportstore.NewJSONStore(root, site.Paths.ReportsDir),
		)

		ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Minute)
		defer cancel()

		report, id, err := uc.Execute(ctx, site)
		if err != nil {
			log.Error("check.failed", "err", err)
		} else {
			log.Info("check.ok", "links", len(report.Results), "failures", report.Failures(), "saved_id", id)
		}
		return checkDoneMsg{report: report, id: id, err: err}
	}
}

func cmdVerifySamples(deps Deps) tea.Cmd {
	return func() tea.Msg {
		log := depsLogger(deps)

		results := usecase.NewVerifySamples(components.Samples()).Execute()
		log.Info("verify.done",
			"checks", len(results),
			"failures", usecase.CountSampleFailures(results),
		)
		return verifyDoneMsg{results: results}
	}
}

func depsLogger(deps Deps) *slog.Logger {
	if deps.Logger != nil {
		return deps.Logger
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
