// Package main provides the refex CLI entry point.
package main

import (
	"os"

	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refex",
	Short: "Extract cited references from academic papers",
	Long: `refex extracts the bibliographic references cited within a section
of an academic paper.

Point it at a workspace of PDFs, name a section in plain language, and
it converts the papers to text, locates the section (via an LLM or a
manual template), parses the citation markers, and resolves them against
each paper's reference list. All commands output JSON by default for
easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// findWorkspace returns the workspace root, or exits if not inside one.
// The REFEX_ROOT environment variable overrides discovery.
func findWorkspace() string {
	if root := os.Getenv("REFEX_ROOT"); root != "" {
		return root
	}

	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	root, err := workspace.Find(cwd)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	return root
}
