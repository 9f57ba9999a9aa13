package cli

import (
	"flag"
	"fmt"

	"hydropathy/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: Kyte-Doolittle hydropathy plot for a protein FASTA file

Version: %s

Usage of %s:
  %s [flags] <input_file>

`, name, version.Version, name, name)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  %[1]s protein.fa
  %[1]s -s 19 protein.fa.gz
  %[1]s -format png -o tm.png -width 1600 -height 500 protein.fa
  cat protein.fa | %[1]s -
`, name)
	}
	return fs
}
