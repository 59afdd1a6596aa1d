package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/youtube"
)

// sermonAddCmd represents the sermon add command
var sermonAddCmd = &cobra.Command{
	Use:   "add <video-url>",
	Short: "Harvest a single video as a sermon",
	Long: `Harvest a single video as a sermon.

The video's channel must already be registered. Unless --force is
given, the video is only stored when it qualifies as a sermon: it has
English captions containing at least one scripture reference.

Example:
  windwordsctl sermon add https://www.youtube.com/watch?v=dQw4w9WgXcQ
  windwordsctl sermon add dQw4w9WgXcQ`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		videoID := youtube.VideoID(args[0])
		if videoID == "" {
			fmt.Fprintf(os.Stderr, "No video id found in %q\n", args[0])
			os.Exit(1)
		}
		force, _ := cmd.Flags().GetBool("force")

		ctx := context.Background()
		_, _, s, service, err := setup(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = s.Close(context.Background()) }()

		video, err := service.Video(ctx, videoID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch video: %v\n", err)
			os.Exit(1)
		}

		if !force {
			sermon, err := service.IsVideoSermon(ctx, video)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to check video: %v\n", err)
				os.Exit(1)
			}
			if !sermon {
				fmt.Fprintf(os.Stderr, "%s does not qualify as a sermon (use --force to store it anyway)\n", videoID)
				os.Exit(1)
			}
		}

		if err := service.InsertVideoSermon(ctx, video); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to store sermon: %v\n", err)
			os.Exit(1)
		}

		document, err := s.FindDocument(ctx, model.CollectionSermons, bson.M{"video_id": videoID})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read back sermon: %v\n", err)
			os.Exit(1)
		}
		var sermon model.Sermon
		if err := model.Decode(document, &sermon); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decode sermon: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Stored %s (%s), %d scripture references\n", sermon.Title, sermon.VideoID, len(sermon.Scriptures))
	},
}

func init() {
	sermonCmd.AddCommand(sermonAddCmd)
	sermonAddCmd.Flags().BoolP("force", "f", false, "store the video even if it does not qualify")
}
