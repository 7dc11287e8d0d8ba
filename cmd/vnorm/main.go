// Command vnorm exposes the text operations of package vietnamese on the
// command line. Words and texts are taken from the arguments; where an
// operation reads lists, from standard input, one item per line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:           "vnorm",
	Short:         "Normalize, correct, sort and spell Vietnamese text.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	root.AddCommand(Place, Decompose, Strip, FixAccent, FixIY, FormatName,
		Check, Scan, Sort, SortRecords, Speak, Number, Generate)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vnorm:", err)
		os.Exit(1)
	}
}
