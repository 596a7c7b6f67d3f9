package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Detect and redact secrets in text and Claude Code transcripts",
	Long: `Scrub scans text and Claude Code conversation transcripts for sensitive data
(API keys, bearer tokens, passwords, environment-variable secrets) and redacts
it before the content is shared, exported, or sent to a third-party API.

Detection is configured via ~/.scrub/sanitize.json: a sensitivity level
(minimal, balanced, aggressive, custom), a redaction style (simple, stars,
labeled, partial, hash), custom patterns, and an allowlist of values that are
never redacted.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
