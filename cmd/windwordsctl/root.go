package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "windwordsctl",
	Short: "Harvest sermons from YouTube into the windwords database",
	Long: `windwordsctl harvests sermon videos from registered YouTube channels,
extracts the Bible scripture references spoken in their captions, and
stores the results in the windwords database.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
