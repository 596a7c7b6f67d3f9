package sanitizer

// patternGroup is one category's pattern sources, in declaration order.
type patternGroup struct {
	category Category
	sources  []string
}

// apiKeyPatterns are high-confidence vendor-prefixed keys. Generic prefixes
// require at least 20 trailing characters so short placeholders like
// "sk-xxxx" never match; GitHub tokens are fixed-length.
var apiKeyPatterns = []string{
	`\bsk-proj-[A-Za-z0-9_-]{20,}`,
	`\bsk-or-v1-[A-Za-z0-9_-]{20,}`,
	`\bsk-[A-Za-z0-9_-]{20,}`,
	`\bgh[pos]_[A-Za-z0-9]{36}\b`,
	`\bAKIA[0-9A-Z]{16}\b`,
	`\bAIza[0-9A-Za-z_-]{35}`,
}

// tokenPatterns match bearer headers, three-segment JWTs, and Slack tokens.
var tokenPatterns = []string{
	`(?i)\bbearer\s+([A-Za-z0-9_./+=-]{16,})`,
	`\beyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`,
	`\bxox[baprs]-[0-9a-zA-Z-]{10,72}`,
}

// passwordPatterns match a password-ish keyword immediately followed by an
// assignment and a value of at least 8 non-whitespace characters. The value
// is the last capture group.
var passwordPatterns = []string{
	`(?i)\b(?:password|passwd|pwd|secret)\s*[:=]\s*["']?([^\s"']{8,})`,
}

// envVarPatterns match uppercase environment-variable assignments whose name
// ends in a sensitive suffix, optionally preceded by "export".
var envVarPatterns = []string{
	`\b(?:export\s+)?(?:[A-Z][A-Z0-9_]*_)?(?:API_KEY|SECRET_KEY|AUTH_TOKEN|PASSWORD|SECRET|TOKEN|KEY)\s*[:=]\s*["']?([^\s"']{8,})`,
}

// builtinPatterns returns the built-in groups active at the given level, in
// priority order. LevelCustom activates no built-ins at all.
func builtinPatterns(level Level) []patternGroup {
	switch level {
	case LevelCustom:
		return nil
	case LevelMinimal:
		return []patternGroup{
			{category: CategoryAPIKey, sources: apiKeyPatterns},
		}
	default:
		// balanced and aggressive currently share one pattern set;
		// aggressive is reserved for entropy-based broadening.
		return []patternGroup{
			{category: CategoryAPIKey, sources: apiKeyPatterns},
			{category: CategoryToken, sources: tokenPatterns},
			{category: CategoryPassword, sources: passwordPatterns},
			{category: CategoryEnvVar, sources: envVarPatterns},
		}
	}
}
