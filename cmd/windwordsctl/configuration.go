package main

import (
	"github.com/spf13/cobra"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config"},
	Short:   "Manage the windwords configuration",
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}
