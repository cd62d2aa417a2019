package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/shiseikan/internal/trait"
	"github.com/spf13/cobra"
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "List the four dimensions and the sixteen type codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printTraits(cmd.OutOrStdout())
	},
}

func printTraits(out io.Writer) {
	fmt.Fprintln(out, "Dimensions (answer 1 leans to the first trait, 10 to the second)")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, d := range trait.Dimensions() {
		low, high := d.Pair.Low(), d.Pair.High()
		fmt.Fprintf(out, "%-10s %s %-14s %s %s\n", d.Name, low, low.Label(), high, high.Label())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type codes")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, c := range trait.AllTypeCodes() {
		fmt.Fprintf(out, "%s  %s\n", c, strings.Join(c.Labels(), " / "))
	}
}
