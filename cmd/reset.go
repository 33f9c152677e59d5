package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/stats"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := store.SetBestScore(ctx, 0); err != nil {
			return err
		}
		if err := store.SetTotalQuizzes(ctx, 0); err != nil {
			return err
		}
		if err := store.SetBestStreak(ctx, 0); err != nil {
			return err
		}

		fmt.Println("Statistics reset.")
		return nil
	},
}
