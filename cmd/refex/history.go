package main

import (
	"fmt"

	"github.com/refex/refex/internal/history"
	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent extraction runs",
	Long: `Show recent extraction runs recorded in the workspace, newest first.

Example:
  refex history --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	root := findWorkspace()

	db, err := history.Open(workspace.HistoryPath(root))
	if err != nil {
		exitWithError(ExitError, "opening history: %v", err)
	}
	defer db.Close()

	runs, err := db.Recent(historyLimit)
	if err != nil {
		exitWithError(ExitError, "reading history: %v", err)
	}

	if humanOutput {
		if len(runs) == 0 {
			fmt.Println("No extraction runs recorded yet.")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s  %s\n", run.CreatedAt.Format("2006-01-02 15:04"), run.Paper)
			fmt.Printf("    query: %s\n", run.Query)
			fmt.Printf("    %d cited, %d resolved, %d missing", run.Cited, run.Resolved, run.Missing)
			if run.Provider != "" {
				fmt.Printf("  (%s/%s)", run.Provider, run.Model)
			}
			fmt.Println()
		}
	} else {
		if runs == nil {
			runs = []history.Run{}
		}
		outputJSON(runs)
	}

	return nil
}
