package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/infra/devserver"
)

func serveCmd() *cobra.Command {
	var workspace string
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Preview the rendered site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			srv, err := devserver.New(ws.site, ws.pages, ws.renderer, devserver.WithAddr(addr))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Serving %d page(s) on %s (ctrl-c to stop)\n", len(ws.pages), addr)
			return srv.Run(ctx)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return c
}
