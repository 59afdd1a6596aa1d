package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/config"
	"github.com/windwords/windwords/pkg/server/endpoints"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the windwords server to answer on its status endpoint",
	Long: `Wait for the windwords server to answer on its status endpoint.

Polls GET /?format=json once a second until the server reports an ok
status or the retry budget runs out, then prints the server version and
collection counts.

Example:
  windwordsctl wait
  windwordsctl wait --port 3000 --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		retries, _ := cmd.Flags().GetInt("retries")

		status, err := waitForServer(port, retries)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("windwords %s is up\n", status.Version)
		for collection, count := range status.Database {
			fmt.Printf("  %s: %d\n", collection, count)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", config.Get().Port, "Server port to check")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForServer(port, retries int) (*endpoints.StatusResponse, error) {
	url := fmt.Sprintf("http://localhost:%d/?format=json", port)
	client := &http.Client{Timeout: 2 * time.Second}

	for i := 0; i < retries; i++ {
		if i > 0 {
			time.Sleep(1 * time.Second)
		}
		status, err := fetchStatus(client, url)
		if err != nil || status.Status != "ok" {
			continue
		}
		return status, nil
	}

	return nil, fmt.Errorf("no ok status from %s after %d attempts", url, retries)
}

func fetchStatus(client *http.Client, url string) (*endpoints.StatusResponse, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status endpoint answered %s", resp.Status)
	}

	var status endpoints.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
