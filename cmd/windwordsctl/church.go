package main

import (
	"github.com/spf13/cobra"
)

// churchCmd represents the church command
var churchCmd = &cobra.Command{
	Use:   "church",
	Short: "Manage registered churches",
}

func init() {
	rootCmd.AddCommand(churchCmd)
}
