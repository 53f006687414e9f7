package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is injected through -ldflags by the release build.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the educator version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("educator %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
