package cmd

import (
	"github.com/abhisek/shiseikan/internal/app"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI. Configuration errors,
// including a missing API key, stop here before the terminal is taken over.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Provider: d.provider,
		Session:  d.cfg.Session(),
		Logger:   d.logger,
	})
}
