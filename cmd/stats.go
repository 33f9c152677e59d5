package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved quiz statistics",
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
		st, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Best score:     %d%%\n", st.BestScore)
		fmt.Printf("Quizzes taken:  %d\n", st.TotalQuizzes)
		fmt.Printf("Best streak:    %d\n", st.BestStreak)
		return nil
	},
}
