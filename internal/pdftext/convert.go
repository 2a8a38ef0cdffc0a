// Package pdftext converts PDF papers to plain text for the citation
// core to work over.
package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ConvertFile extracts the plain text of every page of a PDF.
// Pages that fail to extract are skipped; converted PDF text is noisy
// by nature and downstream handles the artifacts.
func ConvertFile(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Result reports the outcome of a directory conversion.
type Result struct {
	// Converted holds the output .txt paths.
	Converted []string `json:"converted"`
	// Failed holds the input PDFs that could not be converted.
	Failed []string `json:"failed,omitempty"`
}

// ConvertAll converts every *.pdf in inputDir to a <stem>.txt file in
// outDir. Individual conversion failures are collected in the result,
// not returned as errors; an unreadable input directory is an error.
func ConvertAll(inputDir, outDir string) (*Result, error) {
	pdfs, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing PDFs: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{}
	for _, pdfPath := range pdfs {
		text, err := ConvertFile(pdfPath)
		if err != nil {
			result.Failed = append(result.Failed, pdfPath)
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
		outPath := filepath.Join(outDir, stem+".txt")
		if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
			result.Failed = append(result.Failed, pdfPath)
			continue
		}

		result.Converted = append(result.Converted, outPath)
	}

	return result, nil
}
