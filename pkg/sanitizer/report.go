package sanitizer

import (
	"fmt"
	"strings"
)

// Report aggregates the matches of one sanitization run.
type Report struct {
	Matches []Match
	Total   int
	Counts  map[Category]int
}

// BuildReport derives a Report from a list of matches.
func BuildReport(matches []Match) Report {
	r := Report{
		Matches: matches,
		Total:   len(matches),
		Counts:  make(map[Category]int),
	}
	for _, m := range matches {
		r.Counts[m.Category]++
	}
	return r
}

// ToText renders a deterministic multi-line summary: total first, then one
// line per non-empty category in priority order, custom last.
func (r Report) ToText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d match(es) redacted\n", r.Total)
	for _, cat := range categoryOrder {
		if n := r.Counts[cat]; n > 0 {
			fmt.Fprintf(&b, "  %-17s %d\n", cat, n)
		}
	}
	return b.String()
}
