package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/usecase"
)

func buildCmd() *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "build",
		Short: "Render every page to static HTML under the output directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewBuildSite(ws.pages, ws.renderer, ws.writer)
			report, err := uc.Execute(cmd.Context(), ws.site)
			if err != nil {
				return err
			}

			return printBuild(os.Stdout, report, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printBuild(w io.Writer, report usecase.BuildReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		total := report.EndedAt.Sub(report.StartedAt)
		if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
			total = 0
		}

		fmt.Fprintf(w, "Built %d page(s) in %s\n\n", len(report.Pages), total.Round(time.Millisecond))
		for _, p := range report.Pages {
			fmt.Fprintf(w, "- %s  %s (%d bytes)\n", p.Slug, p.Path, p.Bytes)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
