package sanitizer

// Category identifies a class of secret pattern. Categories are scanned in a
// fixed priority order; the first category to claim a text offset wins.
type Category string

const (
	CategoryAPIKey   Category = "api_key"
	CategoryToken    Category = "token"
	CategoryPassword Category = "password_context"
	CategoryEnvVar   Category = "env_var"
	CategoryCustom   Category = "custom"
)

// categoryOrder is the scan priority, highest first. CategoryCustom always
// scans last.
var categoryOrder = []Category{
	CategoryAPIKey,
	CategoryToken,
	CategoryPassword,
	CategoryEnvVar,
	CategoryCustom,
}

// Label returns the placeholder used by StyleLabeled.
func (c Category) Label() string {
	switch c {
	case CategoryAPIKey:
		return "[API_KEY]"
	case CategoryToken:
		return "[TOKEN]"
	case CategoryPassword:
		return "[PASSWORD]"
	case CategoryEnvVar:
		return "[SECRET]"
	default:
		return "[REDACTED]"
	}
}

// Level selects which built-in pattern categories are active.
type Level string

const (
	LevelMinimal    Level = "minimal"
	LevelBalanced   Level = "balanced"
	LevelAggressive Level = "aggressive"
	LevelCustom     Level = "custom"
)

// Style selects the transform applied to a detected value.
type Style string

const (
	StyleSimple  Style = "simple"
	StyleStars   Style = "stars"
	StyleLabeled Style = "labeled"
	StylePartial Style = "partial"
	StyleHash    Style = "hash"
)

// Match is one detected occurrence of a secret. Matches are immutable plain
// data; they carry no reference back to the Sanitizer that produced them.
type Match struct {
	Category   Category
	Value      string  // the matched value (last capture group, or whole match)
	Redacted   string  // replacement text, computed once per match
	Offset     int     // byte offset of Value in the source text
	Line       int     // 1-based line number of Offset
	Confidence float64 // fixed at 1.0 for regex matches
}

// Config is the engine configuration. It is read once at construction; a
// Sanitizer never mutates it afterwards.
type Config struct {
	Enabled        bool     `json:"enabled"`
	Level          Level    `json:"level"`
	Style          Style    `json:"style"`
	SanitizePaths  bool     `json:"sanitize_paths"`
	CustomPatterns []string `json:"custom_patterns,omitempty"`
	Allowlist      []string `json:"allowlist,omitempty"`
}

// DefaultAllowlist contains values that are never worth redacting: well-known
// placeholder hosts and loopback addresses.
func DefaultAllowlist() []string {
	return []string{
		`example\.com`,
		`localhost`,
		`127\.0\.0\.1`,
		`0\.0\.0\.0`,
	}
}

// DefaultConfig returns the documented defaults: sanitization is opt-in,
// balanced detection, partial redaction.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		Level:     LevelBalanced,
		Style:     StylePartial,
		Allowlist: DefaultAllowlist(),
	}
}

// ValidLevel reports whether l is one of the enumerated levels.
func ValidLevel(l Level) bool {
	switch l {
	case LevelMinimal, LevelBalanced, LevelAggressive, LevelCustom:
		return true
	}
	return false
}

// ValidStyle reports whether s is one of the enumerated styles.
func ValidStyle(s Style) bool {
	switch s {
	case StyleSimple, StyleStars, StyleLabeled, StylePartial, StyleHash:
		return true
	}
	return false
}
