package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/ports"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

func checkCmd() *cobra.Command {
	var workspace string
	var external bool
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "check",
		Short: "Check link integrity across all pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			site := ws.site
			if external {
				site.Links.CheckExternal = true
			}

			var store ports.ReportStore = ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewCheckLinks(ws.pages, ws.prober, store)
			report, reportID, err := uc.Execute(cmd.Context(), site)
			if err != nil {
				return err
			}

			if err := printLinkReport(os.Stdout, report, reportID, format); err != nil {
				return err
			}

			if fails := report.Failures(); fails > 0 {
				return fmt.Errorf("link check failed (%d broken link(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&external, "external", false, "Probe external links over HTTP")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under the reports directory")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printLinkReport(w io.Writer, report domain.LinkReport, reportID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": reportID,
			"failures":  report.Failures(),
			"results":   report.Results,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyLinkReport(w, report, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyLinkReport(w io.Writer, report domain.LinkReport, reportID string) {
	fmt.Fprintf(w, "Checked %d link(s), %d broken\n", len(report.Results), report.Failures())
	if reportID != "" {
		fmt.Fprintf(w, "Report:  %s\n", reportID)
	}
	fmt.Fprintln(w)

	for _, r := range report.Results {
		mark := color.GreenString("✓")
		if !r.Passed {
			mark = color.RedString("✗")
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", mark, r.Class, r.Link.Href, r.Message)
	}
}
