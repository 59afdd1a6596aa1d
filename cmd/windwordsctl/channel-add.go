package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/handlers"
	"github.com/windwords/windwords/pkg/model"
)

// channelAddCmd represents the channel add command
var channelAddCmd = &cobra.Command{
	Use:   "add <channel-url>",
	Short: "Register a YouTube channel",
	Long: `Register a YouTube channel.

When --place-id is given the channel's church is registered from Google
Places and the two documents are linked.

Example:
  windwordsctl channel add https://www.youtube.com/@example
  windwordsctl channel add https://www.youtube.com/@example --place-id ChIJN1t_tDeuEmsRUsoyG83frY4`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		channelURL := args[0]
		placeID, _ := cmd.Flags().GetString("place-id")

		ctx := context.Background()
		_, _, s, service, err := setup(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = s.Close(context.Background()) }()

		var doc *handlers.ChannelDocument
		if placeID != "" {
			doc, err = service.InsertChannelAndChurch(ctx, channelURL, placeID)
		} else {
			doc, err = service.InsertChannel(ctx, channelURL)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register channel: %v\n", err)
			os.Exit(1)
		}

		stored, err := handlers.Find(ctx, s, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read back channel: %v\n", err)
			os.Exit(1)
		}
		var channel model.Channel
		if err := model.Decode(stored, &channel); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decode channel: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Registered %s (%s)\n", channel.Name, channel.ChannelID)
	},
}

func init() {
	channelCmd.AddCommand(channelAddCmd)
	channelAddCmd.Flags().String("place-id", "", "Google Place id of the channel's church")
}
