package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/refex/refex/internal/citation"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// CiteResponse is the response for the cite command.
type CiteResponse struct {
	Source string `json:"source"`
	IDs    []int  `json:"ids"`
}

// ResolveResponse is the response for the resolve command and for a
// single paper within an extract run.
type ResolveResponse struct {
	Paper    string           `json:"paper"`
	Query    string           `json:"query,omitempty"`
	Section  string           `json:"section,omitempty"`
	IDs      []int            `json:"ids"`
	Entries  []citation.Entry `json:"entries"`
	Resolved int              `json:"resolved"`
	Missing  int              `json:"missing"`
	Output   string           `json:"output,omitempty"`
}

// CleanResponse is the response for the clean command.
type CleanResponse struct {
	Status  string   `json:"status"`
	Removed []string `json:"removed"`
}

// TemplateResponse is the response for manual-template extraction.
type TemplateResponse struct {
	Status   string `json:"status"`
	Paper    string `json:"paper"`
	Template string `json:"template"`
}

// newResolveResponse assembles a ResolveResponse from resolved entries.
// The id list is taken from the entries, which are already normalized
// to ascending order.
func newResolveResponse(paper string, entries []citation.Entry) ResolveResponse {
	resp := ResolveResponse{
		Paper:   paper,
		IDs:     make([]int, 0, len(entries)),
		Entries: entries,
	}
	for _, e := range entries {
		resp.IDs = append(resp.IDs, e.ID)
		if e.Found {
			resp.Resolved++
		} else {
			resp.Missing++
		}
	}
	return resp
}

// renderEntries formats resolved entries as the classic "[id] text"
// reference list.
func renderEntries(entries []citation.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Found {
			fmt.Fprintf(&b, "[%d] %s\n\n", e.ID, e.Text)
		} else {
			fmt.Fprintf(&b, "[%d] NOT FOUND\n\n", e.ID)
		}
	}
	return b.String()
}

// printResolveHuman prints a resolve result in human-readable format.
func printResolveHuman(resp ResolveResponse) {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Paper: %s\n", resp.Paper)
	if resp.Query != "" {
		fmt.Printf("Query: %s\n", resp.Query)
	}
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()
	fmt.Print(renderEntries(resp.Entries))
	fmt.Printf("Total: %d references (%d resolved, %d missing)\n",
		len(resp.Entries), resp.Resolved, resp.Missing)
}
