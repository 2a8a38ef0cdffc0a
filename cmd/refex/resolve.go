package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/refex/refex/internal/citation"
	"github.com/spf13/cobra"
)

var (
	resolveIDs     string
	resolveSection string
)

func init() {
	resolveCmd.Flags().StringVar(&resolveIDs, "ids", "", "Comma-separated reference ids to resolve (e.g. 2,4,7)")
	resolveCmd.Flags().StringVar(&resolveSection, "section", "", "File containing section text; cited ids are parsed from it")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <paper.txt>",
	Short: "Resolve reference ids against a paper's bibliography",
	Long: `Resolve reference ids against the bibliography of a converted paper.

The ids come either from --ids directly, or from parsing the citation
markers in a section text file given with --section. Each id resolves to
its full bibliography entry, or is reported as not found; missing
entries never abort the rest of the resolution.

Example:
  refex resolve monofusion.txt --ids 2,4,7
  refex resolve monofusion.txt --section related_work.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	if (resolveIDs == "") == (resolveSection == "") {
		exitWithError(ExitError, "exactly one of --ids or --section is required")
	}

	paperPath := args[0]
	data, err := os.ReadFile(paperPath)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", paperPath, err)
	}

	var ids []int
	if resolveSection != "" {
		section, err := os.ReadFile(resolveSection)
		if err != nil {
			exitWithError(ExitDataError, "reading %s: %v", resolveSection, err)
		}
		ids = citation.ParseCitations(string(section))
	} else {
		ids, err = parseIDList(resolveIDs)
		if err != nil {
			exitWithError(ExitError, "parsing --ids: %v", err)
		}
	}

	entries := citation.ResolveReferences(string(data), ids)
	resp := newResolveResponse(paperPath, entries)
	resp.Section = resolveSection

	if humanOutput {
		printResolveHuman(resp)
	} else {
		outputJSON(resp)
	}

	return nil
}

// parseIDList parses a comma-separated list of positive integers.
func parseIDList(s string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid reference id %q", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
