package main

import (
	"fmt"

	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove converted text and manual templates",
	Long: `Remove all converted paper text and manual templates from the
workspace. Input PDFs, outputs, config, and run history are untouched.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	root := findWorkspace()

	removed, err := workspace.Clean(root)
	if err != nil {
		exitWithError(ExitError, "cleaning workspace: %v", err)
	}

	if humanOutput {
		for _, path := range removed {
			fmt.Printf("removed: %s\n", path)
		}
		fmt.Printf("%d files removed\n", len(removed))
	} else {
		if removed == nil {
			removed = []string{}
		}
		outputJSON(CleanResponse{Status: "cleaned", Removed: removed})
	}

	return nil
}
