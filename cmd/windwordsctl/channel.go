package main

import (
	"github.com/spf13/cobra"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage registered YouTube channels",
}

func init() {
	rootCmd.AddCommand(channelCmd)
}
