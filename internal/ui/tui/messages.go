package tui

import (
	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type buildDoneMsg struct {
	report usecase.BuildReport
	err    error
}

type checkDoneMsg struct {
	report domain.LinkReport
	id     string
	err    error
}

type verifyDoneMsg struct {
	results []domain.SampleResult
}

type pagesLoadedMsg struct {
	refs []domain.PageRef
}
