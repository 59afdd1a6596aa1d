package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved windwords configuration",
	Long: `Show the resolved windwords configuration.

Each attribute is printed with the source it was resolved from: an
environment variable, the config file, or the built-in default. Secret
values are redacted. The command re-reads the sources, so a running
server started under different settings is not reflected.

The config file is read from $WINDWORDS_CONFIG_PATH/windwords.yml,
default /etc/windwords/config/windwords.yml.

Example:
  windwordsctl configuration show
  windwordsctl configuration show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		switch output {
		case "json":
			formatted, err := cfg.FormatJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to format configuration: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(formatted)
		case "text":
			fmt.Print(cfg.FormatText())
		default:
			fmt.Fprintf(os.Stderr, "Unknown output format %q (want text or json)\n", output)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
