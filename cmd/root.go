package cmd

import (
	"github.com/abhisek/educator/internal/client"
	"github.com/abhisek/educator/internal/history"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "educator",
	Short: "AI educational content generator",
	Long:  "Educator — terminal app and API server that turns a topic or question into explanations, summaries, quizzes, lessons, examples and definitions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides EDUCATOR_DB env var)")
	rootCmd.PersistentFlags().String("api", client.DefaultBaseURL, "Base URL of the educator API server")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUCATOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultDBPath()
}

// apiBaseURL returns the --api flag value.
func apiBaseURL(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("api")
	return u
}
