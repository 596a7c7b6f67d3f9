// Package sanitizer detects and redacts secrets (API keys, bearer tokens,
// contextual passwords, environment-variable assignments) in free text and is
// the engine behind transcript sanitization. A Sanitizer is immutable after
// construction and safe to share across goroutines.
package sanitizer

import (
	"regexp"

	"github.com/santaclaude2025/scrub/pkg/logger"
)

// compiledGroup pairs a category with its successfully compiled matchers.
type compiledGroup struct {
	category Category
	matchers []*regexp.Regexp
}

// Sanitizer owns the compiled pattern set for one configuration. Construction
// never fails: malformed patterns and unrecognized enum values degrade to
// warnings, never to errors.
type Sanitizer struct {
	cfg       Config
	groups    []compiledGroup
	allowlist []*regexp.Regexp
	warnings  []string
	homePath  *regexp.Regexp
}

// homePathPattern matches the user component of common home-directory paths.
var homePathPattern = regexp.MustCompile(`(/(?:home|Users)/)[A-Za-z0-9._-]+`)

// New builds a Sanitizer from cfg. Unrecognized level/style values fall back
// to the defaults with a warning. When cfg.Enabled is false, no patterns are
// compiled at all; SanitizeText and PreviewMatches become no-ops.
func New(cfg Config) *Sanitizer {
	s := &Sanitizer{}
	s.cfg, s.warnings = normalize(cfg)

	if !s.cfg.Enabled {
		return s
	}

	for _, group := range builtinPatterns(s.cfg.Level) {
		matchers, warns := compilePatterns(group.sources, string(group.category))
		s.warnings = append(s.warnings, warns...)
		if len(matchers) > 0 {
			s.groups = append(s.groups, compiledGroup{category: group.category, matchers: matchers})
		}
	}

	// Custom patterns are active at every level and always scan last.
	if len(s.cfg.CustomPatterns) > 0 {
		matchers, warns := compilePatterns(s.cfg.CustomPatterns, "custom")
		s.warnings = append(s.warnings, warns...)
		if len(matchers) > 0 {
			s.groups = append(s.groups, compiledGroup{category: CategoryCustom, matchers: matchers})
		}
	}

	allowlist, warns := compilePatterns(s.cfg.Allowlist, "allowlist")
	s.warnings = append(s.warnings, warns...)
	s.allowlist = allowlist

	if s.cfg.SanitizePaths {
		s.homePath = homePathPattern
	}

	return s
}

// normalize re-validates enum fields, substituting documented defaults.
func normalize(cfg Config) (Config, []string) {
	var warnings []string
	if !ValidLevel(cfg.Level) {
		w := "unrecognized level " + string(cfg.Level) + ", using " + string(LevelBalanced)
		logger.Warn("%s", w)
		warnings = append(warnings, w)
		cfg.Level = LevelBalanced
	}
	if !ValidStyle(cfg.Style) {
		w := "unrecognized style " + string(cfg.Style) + ", using " + string(StylePartial)
		logger.Warn("%s", w)
		warnings = append(warnings, w)
		cfg.Style = StylePartial
	}
	return cfg, warnings
}

// Config returns the effective (normalized) configuration.
func (s *Sanitizer) Config() Config {
	return s.cfg
}

// Enabled reports whether sanitization is active.
func (s *Sanitizer) Enabled() bool {
	return s.cfg.Enabled
}

// Warnings returns the warnings accumulated during construction: invalid
// config values and patterns that failed to compile.
func (s *Sanitizer) Warnings() []string {
	return s.warnings
}

// SanitizeText scans text and returns it with every match replaced by its
// redacted form, plus the matches themselves. When the Sanitizer is disabled
// it returns the input unchanged with no matches.
func (s *Sanitizer) SanitizeText(text string) (string, []Match) {
	if !s.cfg.Enabled {
		return text, nil
	}

	matches := s.scan(text)

	// Replace in descending offset order so earlier replacements cannot
	// shift the offsets of later ones.
	out := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		out = out[:m.Offset] + m.Redacted + out[m.Offset+len(m.Value):]
	}

	if s.homePath != nil {
		out = s.homePath.ReplaceAllString(out, "${1}[USER]")
	}

	return out, matches
}

// PreviewMatches scans text without rewriting it. Callers that want
// human-in-the-loop review render these matches, collect accept/reject
// decisions, and apply the accepted subset themselves.
func (s *Sanitizer) PreviewMatches(text string) []Match {
	if !s.cfg.Enabled {
		return nil
	}
	return s.scan(text)
}
