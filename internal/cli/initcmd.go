package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taurgis/aegis-docsite/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a docsite workspace (docsite.yaml, dist/, .docsite/)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return err
			}

			if err := fsworkspace.NewInitializer().Init(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", abs)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
