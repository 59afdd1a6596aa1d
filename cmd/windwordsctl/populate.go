package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// populateCmd represents the populate command
var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Harvest recent sermons from the registered channels",
	Long: `Harvest recent sermons from the registered channels.

Every registered channel's recent uploads are checked for sermon videos:
videos with English captions that contain at least one scripture
reference. Sermons are stored and linked to their channel and church.

Use --channel to harvest a single channel, --weeks to override the
trailing window, and --schedule to keep running on a cron schedule.

Example:
  windwordsctl populate
  windwordsctl populate --channel https://www.youtube.com/@example
  windwordsctl populate --schedule "0 22 * * TUE"`,
	Run: func(cmd *cobra.Command, args []string) {
		channelURL, _ := cmd.Flags().GetString("channel")
		weeks, _ := cmd.Flags().GetInt("weeks")
		schedule, _ := cmd.Flags().GetString("schedule")

		// The window override flows through the config.
		if weeks > 0 {
			os.Setenv("WINDWORDS_POPULATE_WEEKS", fmt.Sprint(weeks))
		}

		ctx := context.Background()
		_, logger, s, service, err := setup(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = s.Close(context.Background()) }()

		run := func() error {
			if channelURL != "" {
				return service.PopulateChannel(ctx, channelURL)
			}
			return service.PopulateSermons(ctx)
		}

		if schedule == "" {
			if err := run(); err != nil {
				fmt.Fprintf(os.Stderr, "Populate failed: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := runOnSchedule(schedule, logger, run); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)

	populateCmd.Flags().StringP("channel", "c", "", "harvest a single channel url")
	populateCmd.Flags().IntP("weeks", "w", 0, "trailing window in weeks")
	populateCmd.Flags().StringP("schedule", "s", "", "keep running on a cron schedule")
}

// runOnSchedule runs fn at each firing of the cron expression until
// interrupted.
func runOnSchedule(expression string, logger *zap.Logger, fn func() error) error {
	schedule, err := cron.ParseStandard(expression)
	if err != nil {
		return fmt.Errorf("bad schedule %q: %w", expression, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		next := schedule.Next(time.Now())
		logger.Info("waiting for next run", zap.Time("at", next))

		select {
		case <-time.After(time.Until(next)):
			if err := fn(); err != nil {
				logger.Error("populate run failed", zap.Error(err))
			}
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
