package sanitizer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	simpleMarker = "REDACTED"
	maxStars     = 10
	partialHead  = 5
	partialTail  = 3
	partialMask  = "***"

	// Values at or below this length are fully masked under StylePartial;
	// keeping head and tail of a short value would leak most of it.
	partialMinLen = 10
)

// redactValue produces the replacement text for a detected value. Every style
// is a pure function of (value, category); StyleHash is additionally stable
// across calls and documents, so a reader can recognize a reused secret
// without learning its content.
func redactValue(value string, category Category, style Style) string {
	switch style {
	case StyleSimple:
		return simpleMarker
	case StyleStars:
		n := len(value)
		if n > maxStars {
			n = maxStars
		}
		return strings.Repeat("*", n)
	case StyleLabeled:
		return category.Label()
	case StyleHash:
		sum := sha256.Sum256([]byte(value))
		return "[" + hex.EncodeToString(sum[:])[:8] + "]"
	default: // StylePartial
		if len(value) <= partialMinLen {
			return strings.Repeat("*", len(value))
		}
		return value[:partialHead] + partialMask + value[len(value)-partialTail:]
	}
}
