// Package citation implements the citation-resolution core: parsing
// numeric citation markers out of section text and resolving them
// against a paper's bibliography.
package citation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// markerPattern matches a bracketed, comma-separated list of decimal
// integers: [12], [3, 7, 9], [3,7]. Anything else between brackets
// ([Smith 2020], [Fig. 3]) is not a citation marker.
var markerPattern = regexp.MustCompile(`\[(\d+(?:,\s*\d+)*)\]`)

// ParseCitations scans a text fragment for citation markers and returns
// the set of cited reference ids, deduplicated and in ascending order.
// Text with no markers (including empty text) yields an empty slice.
func ParseCitations(text string) []int {
	seen := make(map[int]bool)

	for _, match := range markerPattern.FindAllStringSubmatch(text, -1) {
		for _, field := range strings.Split(match[1], ",") {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				continue // only reachable via integer overflow
			}
			seen[id] = true
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
