// Package prompt builds the text sent to a language model to locate a
// paper section, and the manual fill-in template used when no model is
// configured.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// locateTemplate asks the model for the verbatim section text only.
// Citation parsing and reference resolution happen locally; delegating
// them to the model would make the output unverifiable.
const locateTemplate = `You are an expert at reading academic papers.

TASK: %s

PAPER TEXT:
%s

INSTRUCTIONS:
1. Locate the section or paragraph mentioned in the task.
2. Reply with the VERBATIM text of that section, copied exactly from the
   paper text above, including its citation markers like [1] or [2, 3].
3. Do not summarize, rephrase, renumber citations, or add commentary.
4. If the section cannot be found, reply with exactly: SECTION NOT FOUND

Reply with the section text only.`

// NotFoundReply is the sentinel the model is instructed to return when
// the requested section does not exist in the paper.
const NotFoundReply = "SECTION NOT FOUND"

// BuildLocatePrompt builds the section-location prompt for a paper and
// a user query.
func BuildLocatePrompt(paperText, userQuery string) string {
	return fmt.Sprintf(locateTemplate, userQuery, paperText)
}

// IsNotFound reports whether a model reply is the not-found sentinel.
func IsNotFound(reply string) bool {
	return strings.TrimSpace(reply) == NotFoundReply
}

// manualTemplate is written for the user to fill in by hand when no
// LLM provider is configured.
const manualTemplate = `# ============================================================
# MANUAL REFERENCE EXTRACTION TEMPLATE
# Paper: %s
# Query: %s
# ============================================================
#
# 1. Open the converted paper text:
#      %s
# 2. Find the section mentioned in the query above.
# 3. Replace this comment block with the section text, pasted
#    verbatim (keep the citation markers like [1] or [2, 3]).
# 4. Resolve the cited references:
#      refex resolve %q --section %q
# ============================================================
`

// WriteTemplate writes a manual extraction template for the given
// converted paper into templateDir and returns its path.
func WriteTemplate(templateDir, txtPath, userQuery string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(txtPath), filepath.Ext(txtPath))
	templatePath := filepath.Join(templateDir, stem+"_template.txt")

	content := fmt.Sprintf(manualTemplate,
		filepath.Base(txtPath), userQuery, txtPath, txtPath, templatePath)

	if err := os.MkdirAll(templateDir, 0755); err != nil {
		return "", fmt.Errorf("creating template directory: %w", err)
	}
	if err := os.WriteFile(templatePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing template: %w", err)
	}

	return templatePath, nil
}
