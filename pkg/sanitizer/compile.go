package sanitizer

import (
	"fmt"
	"regexp"

	"github.com/santaclaude2025/scrub/pkg/logger"
)

// compilePatterns compiles each source string, dropping any that fail with a
// recorded warning. It never returns an error: a fully malformed list yields
// an empty matcher set and detection for that purpose is silently skipped.
func compilePatterns(sources []string, purpose string) ([]*regexp.Regexp, []string) {
	matchers := make([]*regexp.Regexp, 0, len(sources))
	var warnings []string

	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			warning := fmt.Sprintf("invalid %s pattern %q: %v", purpose, src, err)
			logger.Warn("%s", warning)
			warnings = append(warnings, warning)
			continue
		}
		matchers = append(matchers, re)
	}

	return matchers, warnings
}
