package main

import (
	"fmt"
	"path/filepath"

	"github.com/refex/refex/internal/pdftext"
	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert workspace PDFs to plain text",
	Long: `Convert every PDF in the workspace inputs/ directory to plain text.

Converted text is written alongside the workspace metadata and consumed
by the extract and resolve commands. Re-running convert overwrites
previously converted text.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	root := findWorkspace()

	result := convertWorkspace(root)

	if humanOutput {
		for _, path := range result.Converted {
			fmt.Printf("converted: %s\n", filepath.Base(path))
		}
		for _, path := range result.Failed {
			fmt.Printf("failed: %s\n", filepath.Base(path))
		}
		fmt.Printf("%d/%d files converted\n",
			len(result.Converted), len(result.Converted)+len(result.Failed))
	} else {
		outputJSON(result)
	}

	return nil
}

// convertWorkspace converts the workspace inputs and exits on a
// directory-level failure. Shared by convert and extract.
func convertWorkspace(root string) *pdftext.Result {
	result, err := pdftext.ConvertAll(workspace.InputsPath(root), workspace.TxtsPath(root))
	if err != nil {
		exitWithError(ExitError, "converting PDFs: %v", err)
	}
	return result
}
