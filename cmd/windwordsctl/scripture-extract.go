package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/windwords/windwords/pkg/scripture"
)

// scriptureExtractCmd represents the scripture extract command
var scriptureExtractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract scripture references from text",
	Long: `Extract scripture references from text.

The argument is read as a file when one exists at that path, otherwise
it is treated as the text itself. With no argument, or with "-", text
is read from stdin. References are printed one per line, sorted and
deduplicated.

Example:
  windwordsctl scripture extract captions.srt
  windwordsctl scripture extract "turn to mark 8 34"
  echo "turn to mark 8 34" | windwordsctl scripture extract`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := readText(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read text: %v\n", err)
			os.Exit(1)
		}

		bible := scripture.New()
		for _, reference := range scripture.Strings(bible.Extract(text)) {
			fmt.Println(reference)
		}
	},
}

func init() {
	scriptureCmd.AddCommand(scriptureExtractCmd)
}

func readText(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		text, err := io.ReadAll(os.Stdin)
		return string(text), err
	}
	if content, err := os.ReadFile(args[0]); err == nil {
		return string(content), nil
	}
	return args[0], nil
}
