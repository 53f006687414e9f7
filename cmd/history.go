package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/educator/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent content generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		events, err := store.ListGenerations(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No generations recorded yet.")
			return nil
		}

		fmt.Printf("%-8s  %-16s  %-12s  %-10s  %-3s  %s\n",
			"ID", "Timestamp", "Type", "Source", "OK", "Prompt")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			prompt := e.Prompt
			if len(prompt) > 44 {
				prompt = prompt[:44] + "…"
			}
			fmt.Printf("%-8s  %-16s  %-12s  %-10s  %-3s  %s\n",
				e.ID[:8],
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.ContentType,
				e.Source,
				ok,
				prompt,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of generations to show")
}
