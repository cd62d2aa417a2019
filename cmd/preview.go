package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/trait"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print provider output without running the quiz",
	Long: `Fetch questions or a result narrative and print them.

This is a developer tool for checking prompt quality. Nothing is scored and
only the optional audit log is written.`,
}

var previewQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Fetch and print a question set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context(), cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		qs, err := d.provider.FetchQuestions(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}
		printQuestions(cmd.OutOrStdout(), qs)
		return nil
	},
}

var previewResultCmd = &cobra.Command{
	Use:   "result <TYPE>",
	Short: "Fetch and print the narrative for a type code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := trait.ParseTypeCode(args[0])
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd.Context(), cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.provider.FetchResult(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("fetch result: %w", err)
		}
		printResult(cmd.OutOrStdout(), *res)
		return nil
	},
}

func printQuestions(out io.Writer, qs []content.Question) {
	counts := make(map[trait.Pair]int)
	for i, q := range qs {
		fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, q.Pair, q.Text)
		counts[q.Pair]++
	}

	fmt.Fprintln(out)
	for _, d := range trait.Dimensions() {
		fmt.Fprintf(out, "%-10s %s  %d\n", d.Name, d.Pair, counts[d.Pair])
	}
}

func init() {
	previewCmd.AddCommand(previewQuestionsCmd)
	previewCmd.AddCommand(previewResultCmd)
}
