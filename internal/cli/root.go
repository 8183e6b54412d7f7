// Package cli provides the command-line interface for xlgen.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xlview/xlgen/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
// Tests create their own instance so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlgen",
		Short: "Spreadsheet fixture generator",
		Long: `Xlgen procedurally generates .xlsx fixture files that exercise
spreadsheet rendering: fonts, fills, borders, alignment, number formats,
conditional formatting, charts, data validation, images, and more.

Fixtures are written with a manifest.json describing each file, and can
be bundled into a single archive for distribution.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newBundleCmd())

	return rootCmd
}

// newLogger builds the logger commands hand to the generators. Verbose
// runs log at debug, everything else stays at info.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "xlgen",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
