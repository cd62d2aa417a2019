package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/shiseikan/internal/config"
	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/llm"
	"github.com/abhisek/shiseikan/internal/logging"
	"github.com/abhisek/shiseikan/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deps is what a quiz command needs, built from the configuration.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	events   *store.Store
	provider content.Provider
}

// Close flushes the logger and closes the audit log.
func (d *deps) Close() {
	_ = d.logger.Sync()
	if d.events != nil {
		_ = d.events.Close()
	}
}

// buildDeps loads the configuration, sets up logging and the optional audit
// log, and builds the content provider. stderr sends logs to the terminal
// when no log file is configured.
func buildDeps(ctx context.Context, cmd *cobra.Command, stderr bool) (*deps, error) {
	cfg, err := config.Load(config.Options{Flags: cmd.Flags()})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Stderr: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	d := &deps{cfg: cfg, logger: logger}

	var repo store.EventRepo
	if cfg.EventsDB != "" {
		if err := store.EnsureDir(cfg.EventsDB); err != nil {
			d.Close()
			return nil, fmt.Errorf("create events dir: %w", err)
		}
		st, err := store.Open(ctx, cfg.EventsDB)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open events db: %w", err)
		}
		d.events = st
		repo = st.EventRepo()
	}

	if cfg.LLM.Provider == llm.ProviderMock {
		logger.Info("using built-in demo content")
		d.provider = content.NewDemoProvider()
		return d, nil
	}

	p, err := llm.NewProvider(ctx, cfg.LLM, logger, repo)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	logger.Info("llm provider ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", p.ModelID()))
	d.provider = content.New(p, cfg.Content(), logger)
	return d, nil
}
