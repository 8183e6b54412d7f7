// Xlgen - a spreadsheet fixture generator
//
// Xlgen procedurally builds .xlsx files that exercise spreadsheet
// rendering features, together with a manifest describing them.
package main

import (
	"os"

	"github.com/xlview/xlgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
