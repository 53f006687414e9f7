package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/educator/internal/generate"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available content types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range generate.AllContentTypes() {
			fmt.Printf("%-12s  %s\n", t, t.Description())
		}
	},
}
