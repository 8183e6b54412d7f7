package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xlview/xlgen/internal/fixture"
)

// newListCmd builds the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available fixture generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"NAME", "DESCRIPTION"})
			table.SetColumnMaxWidth(1, descriptionWidth())

			for _, g := range fixture.Default().All() {
				table.AddRow([]string{g.Name(), g.Description()})
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

// descriptionWidth sizes the description column to the terminal, leaving
// room for the name column. Non-terminal output gets a fixed width.
func descriptionWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	return width - 20
}
