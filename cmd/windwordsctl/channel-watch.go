package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/populate"
)

// channelWatchCmd represents the channel watch command
var channelWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a file and register the channels listed in it",
	Long: `Watch a file and register the channels listed in it.

The watched file holds one channel url per line, optionally followed by
the Google Place id of the channel's church. Whenever the file changes
every listed channel is registered and harvested. Lines starting with #
are skipped.

Example:
  windwordsctl channel watch /run/windwords/channels`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		if err := watchChannels(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch channels: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	channelCmd.AddCommand(channelWatchCmd)
}

func watchChannels(filename string) error {
	ctx := context.Background()
	_, _, s, service, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close(context.Background()) }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for channels\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, registering channels...\n", time.Now().Format(time.RFC3339))
				registerChannelsFromFile(ctx, service, filename)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func registerChannelsFromFile(ctx context.Context, service *populate.Service, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return
	}

	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		channelURL := fields[0]

		var err error
		if len(fields) > 1 {
			_, err = service.InsertChannelAndChurch(ctx, channelURL, fields[1])
		} else {
			_, err = service.InsertChannel(ctx, channelURL)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error registering %s: %v\n", channelURL, err)
			continue
		}
		if err := service.PopulateChannel(ctx, channelURL); err != nil {
			fmt.Fprintf(os.Stderr, "Error harvesting %s: %v\n", channelURL, err)
			continue
		}
		fmt.Printf("Registered and harvested %s\n", channelURL)
	}
}
