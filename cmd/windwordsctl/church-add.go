package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/handlers"
	"github.com/windwords/windwords/pkg/model"
)

// churchAddCmd represents the church add command
var churchAddCmd = &cobra.Command{
	Use:   "add <place-id>",
	Short: "Register a church from Google Places",
	Long: `Register a church from Google Places.

The place must be a church or place of worship. Its address, location,
website and denomination are resolved and stored.

Example:
  windwordsctl church add ChIJN1t_tDeuEmsRUsoyG83frY4`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		placeID := args[0]

		ctx := context.Background()
		_, _, s, service, err := setup(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = s.Close(context.Background()) }()

		church, err := service.InsertChurch(ctx, placeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register church: %v\n", err)
			os.Exit(1)
		}

		document, err := handlers.Find(ctx, s, church)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read back church: %v\n", err)
			os.Exit(1)
		}
		var stored model.Church
		if err := model.Decode(document, &stored); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decode church: %v\n", err)
			os.Exit(1)
		}

		if stored.Denomination != "" {
			fmt.Printf("Registered %s, %s (%s)\n", stored.Name, stored.Denomination, placeID)
		} else {
			fmt.Printf("Registered %s (%s)\n", stored.Name, placeID)
		}
	},
}

func init() {
	churchCmd.AddCommand(churchAddCmd)
}
