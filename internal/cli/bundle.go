package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xlview/xlgen/internal/bundle"
)

// newBundleCmd builds the bundle command.
func newBundleCmd() *cobra.Command {
	var (
		format   string
		inputDir string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Archive generated fixtures into a single file",
		Long: `Bundle the contents of the fixture directory into one archive.
Supported formats are zip, tgz (tar.gz), and txz (tar.xz).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bundle.ParseFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				output = "fixtures" + f.Extension()
			}

			logger := newLogger(cmd)
			logger.Debug("bundling fixtures", "dir", inputDir, "format", f, "output", output)

			n, err := bundle.Create(inputDir, output, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bundled %d files into %s\n", n, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "zip", "archive format (zip, tgz, txz)")
	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "fixtures", "directory containing generated fixtures")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archive path (default fixtures.<ext>)")

	return cmd
}
