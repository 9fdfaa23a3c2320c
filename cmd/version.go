package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gored/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gored",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gored v%s\n", version.Version)
		fmt.Println("Speed Reducer Design Tool")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
