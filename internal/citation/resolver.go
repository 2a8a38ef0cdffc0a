package citation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Entry is the resolution result for a single requested reference id.
// Found distinguishes a real bibliography entry from a missing one;
// callers must not treat a missing entry's empty Text as a citation.
type Entry struct {
	ID    int    `json:"id"`
	Text  string `json:"text,omitempty"`
	Found bool   `json:"found"`
}

// terminatorPatterns delimit the end of a bibliography entry, tested in
// priority order. PDF text extraction interleaves page numbers and
// appendix headers with the reference list, so the boundary is not
// simply "the next bracket".
var terminatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\n\s*\[\d+\]`), // next numeric marker on a new line
	regexp.MustCompile(`\nAppendix`),   // appendix header
	regexp.MustCompile(`\n\d+\s*\n`),   // bare page-number line
}

// whitespaceRun collapses line-wrapping artifacts in extracted entries.
var whitespaceRun = regexp.MustCompile(`\s+`)

// ResolveReferences locates the bibliography block in fullText and
// extracts the entry for each requested id. The result contains exactly
// one Entry per requested id, in ascending id order regardless of the
// order ids arrive in or the order entries appear in the bibliography;
// ids with no matching entry come back with Found=false rather than
// being dropped. An empty or unreadable fullText yields all-missing
// entries, never an error.
func ResolveReferences(fullText string, ids []int) []Entry {
	block := bibliographyBlock(fullText)

	requested := normalizeIDs(ids)
	entries := make([]Entry, 0, len(requested))
	for _, id := range requested {
		text, ok := extractEntry(block, id)
		entries = append(entries, Entry{ID: id, Text: text, Found: ok})
	}

	return entries
}

// normalizeIDs returns a sorted, duplicate-free copy of ids.
func normalizeIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// bibliographyBlock returns the portion of fullText from the start of
// the reference list onward. It looks for the literal section header
// "References" first, then falls back to the first "[1]" marker (the
// start of a numbered list). If neither appears the whole text is used,
// degrading to a best-effort search rather than failing.
func bibliographyBlock(fullText string) string {
	if idx := strings.Index(fullText, "References"); idx >= 0 {
		return fullText[idx:]
	}
	if idx := strings.Index(fullText, "[1]"); idx >= 0 {
		return fullText[idx:]
	}
	return fullText
}

// extractEntry finds the entry for a single id within the bibliography
// block. Returns the normalized entry text and whether it was found.
func extractEntry(block string, id int) (string, bool) {
	marker := regexp.MustCompile(fmt.Sprintf(`\[%d\]\s+`, id))
	loc := marker.FindStringIndex(block)
	if loc == nil {
		return "", false
	}

	rest := block[loc[1]:]
	end := len(rest)
	for _, pattern := range terminatorPatterns {
		if m := pattern.FindStringIndex(rest); m != nil && m[0] < end {
			end = m[0]
		}
	}

	text := whitespaceRun.ReplaceAllString(rest[:end], " ")
	return strings.TrimSpace(text), true
}
