package transcript

import (
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

// SanitizeEntry returns a copy of the entry with every string-bearing leaf
// sanitized, plus the matches found across all leaves. The original entry and
// anything it references are never mutated.
func SanitizeEntry(entry Entry, s *sanitizer.Sanitizer) (Entry, []sanitizer.Match) {
	out := entry
	var matches []sanitizer.Match

	if entry.Summary != "" {
		out.Summary = sanitizeString(entry.Summary, s, &matches)
	}
	if entry.Message != nil {
		msg := *entry.Message
		msg.Content = sanitizeContent(entry.Message.Content, s, &matches)
		out.Message = &msg
	}
	return out, matches
}

// SanitizeEntries applies SanitizeEntry to each entry in order.
func SanitizeEntries(entries []Entry, s *sanitizer.Sanitizer) ([]Entry, []sanitizer.Match) {
	out := make([]Entry, len(entries))
	var matches []sanitizer.Match
	for i, entry := range entries {
		cleaned, found := SanitizeEntry(entry, s)
		out[i] = cleaned
		matches = append(matches, found...)
	}
	return out, matches
}

func sanitizeString(text string, s *sanitizer.Sanitizer, matches *[]sanitizer.Match) string {
	cleaned, found := s.SanitizeText(text)
	*matches = append(*matches, found...)
	return cleaned
}

// sanitizeContent rebuilds a content variant with text payloads sanitized.
// Block count, types, and ordering are preserved.
func sanitizeContent(c Content, s *sanitizer.Sanitizer, matches *[]sanitizer.Match) Content {
	switch v := c.(type) {
	case TextContent:
		return TextContent(sanitizeString(string(v), s, matches))
	case BlockContent:
		blocks := make([]Block, len(v))
		for i, block := range v {
			blocks[i] = sanitizeBlock(block, s, matches)
		}
		return BlockContent(blocks)
	default:
		return c
	}
}

func sanitizeBlock(block Block, s *sanitizer.Sanitizer, matches *[]sanitizer.Match) Block {
	out := block
	if block.Text != "" {
		out.Text = sanitizeString(block.Text, s, matches)
	}
	if block.Thinking != "" {
		out.Thinking = sanitizeString(block.Thinking, s, matches)
	}
	if block.Input != nil {
		out.Input = sanitizeValueMap(block.Input, s, matches)
	}
	if block.Content != nil {
		out.Content = sanitizeContent(block.Content, s, matches)
	}
	return out
}

// sanitizeValueMap walks a loosely-typed JSON object (tool inputs and the
// like), sanitizing every string value and rebuilding containers so shared
// maps are never mutated in place.
func sanitizeValueMap(in map[string]interface{}, s *sanitizer.Sanitizer, matches *[]sanitizer.Match) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = sanitizeValue(v, s, matches)
	}
	return out
}

func sanitizeValue(v interface{}, s *sanitizer.Sanitizer, matches *[]sanitizer.Match) interface{} {
	switch val := v.(type) {
	case string:
		return sanitizeString(val, s, matches)
	case map[string]interface{}:
		return sanitizeValueMap(val, s, matches)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item, s, matches)
		}
		return out
	default:
		// Numbers, bools, nil - nothing to sanitize
		return v
	}
}
