package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/components"
)

func pagesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pages",
		Short: "List registered content pages",
		RunE: func(_ *cobra.Command, _ []string) error {
			pages := components.Pages()
			if len(pages) == 0 {
				fmt.Println("(no pages registered)")
				return nil
			}

			for _, p := range pages {
				fmt.Printf("- %s  (%s)\n", p.Slug(), p.Title())
			}
			return nil
		},
	}
	return c
}
