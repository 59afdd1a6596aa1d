package main

import (
	"github.com/spf13/cobra"
)

// scriptureCmd represents the scripture command
var scriptureCmd = &cobra.Command{
	Use:   "scripture",
	Short: "Work with scripture references",
}

func init() {
	rootCmd.AddCommand(scriptureCmd)
}
