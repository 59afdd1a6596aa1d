package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/server"
	"github.com/windwords/windwords/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the windwords API server",
	Long: `Run the windwords API server

To run the server requires the environment variables MONGO_USERNAME,
MONGO_PASSWORD and MONGO_CLUSTER.

By default, collection indexes are created on startup. Use --no-index
to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, logger, s, service, err := setup(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = s.Close(context.Background()) }()

		noIndex, _ := cmd.Flags().GetBool("no-index")
		if !noIndex {
			if err := s.EnsureIndexes(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create indexes: %v\n", err)
				os.Exit(1)
			}
		}

		host, _ := cmd.Flags().GetString("bind-address")
		if host == "" {
			host = cfg.BindAddress
		}
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = strconv.Itoa(cfg.Port)
		}

		srv := server.NewServer(s, service, logger, host, port)
		endpoints.RegisterAll(srv)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(srv.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address")
	serverCmd.Flags().Bool("no-index", false, "skip creating collection indexes on start")
}
