package main

import (
	"fmt"
	"os"

	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a refex workspace in the current directory",
	Long: `Create a refex workspace in the current directory.

This creates the inputs/ and outputs/ directories and the .refex/
directory holding converted text, manual templates, local config, and
run history. Drop paper PDFs into inputs/ afterwards.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if err := workspace.Init(cwd); err != nil {
		exitWithError(ExitError, "initializing workspace: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized refex workspace in %s\n", cwd)
		fmt.Println("Add paper PDFs to inputs/ and run: refex convert")
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: cwd})
	}

	return nil
}
