package sanitizer

import (
	"sort"
	"strings"
)

// scan walks the text once per compiled group in priority order and returns
// matches sorted by ascending byte offset. Offsets already claimed by a
// higher-priority category are skipped, so a value detected by two categories
// is reported exactly once, tagged with the higher-priority one.
func (s *Sanitizer) scan(text string) []Match {
	seen := make(map[int]bool)
	var matches []Match

	for _, group := range s.groups {
		for _, re := range group.matchers {
			for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
				start, end := valueSpan(loc)
				if start < 0 {
					continue
				}
				if seen[start] {
					continue
				}
				value := text[start:end]
				if s.allowed(value) {
					// Allowlisted values do not claim the offset.
					continue
				}
				seen[start] = true
				matches = append(matches, Match{
					Category:   group.category,
					Value:      value,
					Redacted:   redactValue(value, group.category, s.cfg.Style),
					Offset:     start,
					Line:       1 + strings.Count(text[:start], "\n"),
					Confidence: 1.0,
				})
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Offset < matches[j].Offset
	})
	return matches
}

// valueSpan extracts the matched value's byte range from a submatch index
// slice: the last participating capture group when the pattern has groups
// (the semantic payload, e.g. the value after "password ="), otherwise the
// whole match.
func valueSpan(loc []int) (int, int) {
	for i := len(loc) - 2; i >= 2; i -= 2 {
		if loc[i] >= 0 {
			return loc[i], loc[i+1]
		}
	}
	return loc[0], loc[1]
}

// allowed reports whether any allowlist matcher matches the candidate value.
func (s *Sanitizer) allowed(value string) bool {
	for _, re := range s.allowlist {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
