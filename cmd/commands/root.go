package commands

// Root command for the Cobra CLI.

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chartrace",
	Short: "chartrace - animated bar and line race charts from time-series tables",
	Long: `chartrace renders tabular time-series data as animated charts (bar races,
line races), interpolating sparse periodic observations into a smooth
animation timeline and encoding the result as a GIF or video file.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
