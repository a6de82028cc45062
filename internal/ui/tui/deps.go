package tui

import (
	"log/slog"

	"github.com/taurgis/aegis-docsite/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	SiteLoader           ports.SiteLoader

	Logger *slog.Logger
	Debug  bool
}
