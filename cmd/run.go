package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/logger"
	"github.com/quizdeck/quizdeck/internal/stats"
	"github.com/quizdeck/quizdeck/internal/trivia"
)

// runApp loads configuration, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Debug.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := stats.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	return app.Run(app.Options{
		Provider: trivia.NewClient(),
		Store:    store,
		Logger:   log,
		Defaults: cfg.QuizDefaults(),
		Stats:    st,
	})
}
