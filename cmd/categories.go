package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/trivia"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available trivia categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), trivia.RequestTimeout)
		defer cancel()

		client := trivia.NewClient()
		categories, err := client.FetchCategories(ctx)
		if err != nil {
			fmt.Println("Couldn't reach the trivia service; showing built-in categories.")
			categories = trivia.DefaultCategories()
		}

		for _, c := range categories {
			fmt.Printf("%4d  %s\n", c.ID, c.Name)
		}
		return nil
	},
}
