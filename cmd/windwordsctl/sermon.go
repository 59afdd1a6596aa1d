package main

import (
	"github.com/spf13/cobra"
)

// sermonCmd represents the sermon command
var sermonCmd = &cobra.Command{
	Use:   "sermon",
	Short: "Manage harvested sermons",
}

func init() {
	rootCmd.AddCommand(sermonCmd)
}
