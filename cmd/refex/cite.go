package main

import (
	"fmt"
	"io"
	"os"

	"github.com/refex/refex/internal/citation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite [file]",
	Short: "Parse citation markers from text",
	Long: `Parse citation markers from a text file, or from stdin when no file
is given, and print the cited reference ids.

Markers are bracketed integer lists like [12] or [3, 7, 9]. Bracketed
text that is not an integer list ([Smith 2020], [Fig. 3]) is ignored.
Ids are deduplicated and printed in ascending order.

Example:
  refex cite section.txt
  pbpaste | refex cite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	source := "stdin"
	var data []byte
	var err error

	if len(args) == 1 {
		source = args[0]
		data, err = os.ReadFile(args[0])
		if err != nil {
			exitWithError(ExitDataError, "reading %s: %v", args[0], err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitDataError, "reading stdin: %v", err)
		}
	}

	ids := citation.ParseCitations(string(data))

	if humanOutput {
		fmt.Printf("%d unique references cited\n", len(ids))
		for _, id := range ids {
			fmt.Printf("[%d]\n", id)
		}
	} else {
		outputJSON(CiteResponse{Source: source, IDs: ids})
	}

	return nil
}
