package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xlview/xlgen/internal/fixture"
	"github.com/xlview/xlgen/internal/manifest"
)

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	var (
		only         []string
		rows         int
		cols         int
		outputDir    string
		manifestOnly bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate spreadsheet fixture files",
		Long: `Generate .xlsx fixture files into the output directory and rebuild
manifest.json from the directory contents.

By default every registered generator runs; --only restricts the run to
the named generators. --manifest-only skips generation and just rebuilds
the manifest from files already on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			registry := fixture.Default()

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			if !manifestOnly {
				names := only
				if len(names) == 0 {
					names = registry.List()
				}

				opts := fixture.Options{
					Dir:    outputDir,
					Rows:   rows,
					Cols:   cols,
					Logger: logger,
				}
				for _, name := range names {
					g, ok := registry.Get(name)
					if !ok {
						return fmt.Errorf("unknown generator %q (available: %s)",
							name, strings.Join(registry.List(), ", "))
					}
					path, err := g.Generate(opts)
					if err != nil {
						return fmt.Errorf("generator %q failed: %w", name, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
				}
			}

			// The manifest is always rebuilt wholesale so stale entries
			// never survive a partial run.
			entries, err := manifest.Write(outputDir)
			if err != nil {
				return fmt.Errorf("failed to write manifest: %w", err)
			}
			logger.Debug("manifest rebuilt", "entries", len(entries))
			fmt.Fprintf(cmd.OutOrStdout(), "manifest: %d files\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "run only the named generators (comma separated)")
	cmd.Flags().IntVar(&rows, "rows", 0, "row count for the bulk dataset fixture")
	cmd.Flags().IntVar(&cols, "cols", 0, "column count for the bulk dataset fixture")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "fixtures", "directory to write fixtures into")
	cmd.Flags().BoolVar(&manifestOnly, "manifest-only", false, "rebuild manifest.json without generating fixtures")

	return cmd
}
