package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/abhisek/shiseikan/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shiseikan",
	Short: "Worldview personality quiz",
	Long: `Shiseikan asks a short series of questions about life and death and
describes your worldview as one of sixteen four-letter types.

Questions and the result are written by a language model. Set API_KEY, or
use --provider mock to play offline with built-in questions.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(traitsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
