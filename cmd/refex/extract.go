package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/refex/refex/internal/citation"
	"github.com/refex/refex/internal/config"
	"github.com/refex/refex/internal/history"
	"github.com/refex/refex/internal/llm"
	"github.com/refex/refex/internal/prompt"
	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	extractProvider  string
	extractModel     string
	extractNoConvert bool
	extractManual    bool
	extractClear     bool
)

func init() {
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider: anthropic or ollama (default from config, falling back to anthropic)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model to use (default depends on provider)")
	extractCmd.Flags().BoolVar(&extractNoConvert, "no-convert", false, "Skip the PDF conversion step")
	extractCmd.Flags().BoolVar(&extractManual, "manual", false, "Write manual extraction templates instead of calling an LLM")
	extractCmd.Flags().BoolVar(&extractClear, "clear", false, "Clear converted text and templates before processing")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <query>",
	Short: "Extract the references cited in a section of each paper",
	Long: `Extract the references cited in a section of each converted paper.

The query names a section in plain language ("Extract references from
the Related Work section"). An LLM locates the section text; the
citation markers in it are parsed and resolved against the paper's own
reference list. Results are written to outputs/ and printed.

With --manual no LLM is called; a fill-in template is written for each
paper instead, to be completed by hand and fed to refex resolve.

Example:
  refex extract "Extract references from the Related Work section"
  refex extract "references in the Introduction" --provider ollama --model llama3.2`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	query := args[0]
	root := findWorkspace()

	if extractClear {
		if _, err := workspace.Clean(root); err != nil {
			exitWithError(ExitError, "clearing workspace: %v", err)
		}
	}

	if !extractNoConvert {
		convertWorkspace(root)
	}

	txts, err := filepath.Glob(filepath.Join(workspace.TxtsPath(root), "*.txt"))
	if err != nil {
		exitWithError(ExitError, "listing converted papers: %v", err)
	}
	if len(txts) == 0 {
		exitWithError(ExitDataError, "no converted papers found; add PDFs to inputs/ and run refex convert")
	}

	if extractManual {
		return runExtractManual(root, query, txts)
	}

	provider := newProvider(root)
	ctx := context.Background()

	var responses []ResolveResponse
	for _, txtPath := range txts {
		resp, err := extractPaper(ctx, provider, root, txtPath, query)
		if err != nil {
			exitWithError(ExitLLMError, "extracting from %s: %v", filepath.Base(txtPath), err)
		}
		responses = append(responses, resp)
	}

	if humanOutput {
		for _, resp := range responses {
			printResolveHuman(resp)
			fmt.Println()
		}
	} else {
		outputJSON(responses)
	}

	return nil
}

// extractPaper runs the full pipeline for one converted paper: the LLM
// locates the section, the core parses its citation markers and
// resolves them against the paper's bibliography, and the rendered
// reference list lands in outputs/. Every run is recorded in history.
func extractPaper(ctx context.Context, provider llm.Provider, root, txtPath, query string) (ResolveResponse, error) {
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return ResolveResponse{}, fmt.Errorf("reading paper: %w", err)
	}
	fullText := string(data)

	reply, err := provider.Complete(ctx, prompt.BuildLocatePrompt(fullText, query))
	if err != nil {
		return ResolveResponse{}, err
	}

	var entries []citation.Entry
	if prompt.IsNotFound(reply) {
		// No section means no citations; an empty result, not a failure.
		entries = citation.ResolveReferences(fullText, nil)
	} else {
		ids := citation.ParseCitations(reply)
		entries = citation.ResolveReferences(fullText, ids)
	}

	resp := newResolveResponse(filepath.Base(txtPath), entries)
	resp.Query = query

	outPath, err := writeOutput(root, txtPath, resp)
	if err != nil {
		return ResolveResponse{}, err
	}
	resp.Output = outPath

	recordRun(root, resp, provider)

	return resp, nil
}

// runExtractManual writes a fill-in template per paper instead of
// calling an LLM.
func runExtractManual(root, query string, txts []string) error {
	var responses []TemplateResponse
	for _, txtPath := range txts {
		templatePath, err := prompt.WriteTemplate(workspace.TemplatesPath(root), txtPath, query)
		if err != nil {
			exitWithError(ExitError, "writing template: %v", err)
		}
		responses = append(responses, TemplateResponse{
			Status:   "template_created",
			Paper:    filepath.Base(txtPath),
			Template: templatePath,
		})
	}

	if humanOutput {
		for _, resp := range responses {
			fmt.Printf("template for %s: %s\n", resp.Paper, resp.Template)
		}
		fmt.Println("Fill in a template and follow its resolve instructions.")
	} else {
		outputJSON(responses)
	}

	return nil
}

// newProvider builds the LLM provider from flags, workspace config, and
// global config, in that precedence order.
func newProvider(root string) llm.Provider {
	// API keys may live in a .env next to the workspace.
	_ = godotenv.Load()

	local, err := workspace.LoadConfig(root)
	if err != nil {
		local = &workspace.Config{}
	}

	name := firstNonEmpty(extractProvider, local.Provider, config.GetProvider(), "anthropic")
	model := firstNonEmpty(extractModel, local.Model, config.GetModel())

	provider, err := llm.New(llm.Config{
		Provider:        name,
		Model:           model,
		AnthropicAPIKey: config.GetAnthropicAPIKey(),
		OllamaURL:       firstNonEmpty(local.OllamaURL, config.GetOllamaURL()),
	})
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if ollama, ok := provider.(*llm.OllamaClient); ok {
		if err := ollama.IsAvailable(context.Background()); err != nil {
			exitWithError(ExitLLMError, "%v", err)
		}
	}

	return provider
}

// writeOutput writes the rendered reference list for one paper to the
// workspace outputs directory.
func writeOutput(root, txtPath string, resp ResolveResponse) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(txtPath), filepath.Ext(txtPath))
	outPath := filepath.Join(workspace.OutputsPath(root), stem+"_references.txt")

	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n\n", resp.Query)
	b.WriteString(renderEntries(resp.Entries))

	if err := os.MkdirAll(workspace.OutputsPath(root), 0755); err != nil {
		return "", fmt.Errorf("creating outputs directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}

	return outPath, nil
}

// recordRun stores the run in history. History is an aid, not part of
// the result; failures surface on stderr without failing the run.
func recordRun(root string, resp ResolveResponse, provider llm.Provider) {
	db, err := history.Open(workspace.HistoryPath(root))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening history: %v\n", err)
		return
	}
	defer db.Close()

	run := history.Run{
		Paper:    resp.Paper,
		Query:    resp.Query,
		Provider: provider.Name(),
		Cited:    len(resp.IDs),
		Resolved: resp.Resolved,
		Missing:  resp.Missing,
	}
	if m, ok := provider.(interface{ Model() string }); ok {
		run.Model = m.Model()
	}

	if _, err := db.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
