package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/components"
	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/usecase"
)

func verifyCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify published code samples against their structural checks",
		RunE: func(_ *cobra.Command, _ []string) error {
			uc := usecase.NewVerifySamples(components.Samples())
			results := uc.Execute()

			if err := printSampleResults(os.Stdout, results, format); err != nil {
				return err
			}

			if fails := usecase.CountSampleFailures(results); fails > 0 {
				return fmt.Errorf("sample verification failed (%d failed check(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printSampleResults(w io.Writer, results []domain.SampleResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"failures": usecase.CountSampleFailures(results),
			"results":  results,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettySampleResults(w, results)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySampleResults(w io.Writer, results []domain.SampleResult) {
	fmt.Fprintf(w, "Verified %d check(s), %d failed\n\n", len(results), usecase.CountSampleFailures(results))

	for _, r := range results {
		mark := color.GreenString("✓")
		if !r.Passed {
			mark = color.RedString("✗")
		}
		fmt.Fprintf(w, "%s %s / %s: %s\n", mark, r.Sample, r.Check, r.Message)
	}
}
