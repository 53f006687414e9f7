package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/educator/internal/app"
	"github.com/abhisek/educator/internal/history"
	"github.com/spf13/cobra"
)

// runApp opens the history store and launches the TUI against the API.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	var events history.EventRepo
	store, err := history.Open(dbPath)
	if err != nil {
		// The TUI works without local history; the history screen
		// shows a placeholder instead.
		fmt.Fprintln(os.Stderr, "History database unavailable:", err)
	} else {
		defer store.Close()
		events = store
	}

	return app.Run(apiBaseURL(cmd), events)
}
