package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santaclaude2025/scrub/pkg/config"
	"github.com/santaclaude2025/scrub/pkg/logger"
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
	"github.com/santaclaude2025/scrub/pkg/utils"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "List what would be redacted without rewriting anything",
	Long: `Preview scans text from a file (or stdin) and prints every match with its
category, line number, a truncated form of the original value, and the
replacement that scan would produce. The input is never modified.

Preview scans even when sanitization is disabled in the config, since it
changes nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running preview command")

		text, source, err := readInput(args)
		if err != nil {
			return err
		}

		cfg, warnings, err := config.Load()
		if err != nil {
			return err
		}
		// Read-only operation: scanning with a disabled config is safe
		// and pointless to refuse.
		cfg.Enabled = true

		s := sanitizer.New(cfg)
		matches := s.PreviewMatches(text)

		if len(matches) == 0 {
			fmt.Printf("No secrets detected in %s\n", source)
		}
		for _, m := range matches {
			fmt.Printf("line %-5d %-17s %-24s -> %s\n",
				m.Line, m.Category, utils.TruncateSecret(m.Value, 5, 3), m.Redacted)
		}

		printWarnings(append(warnings, s.Warnings()...))
		if len(matches) > 0 {
			fmt.Fprint(os.Stderr, sanitizer.BuildReport(matches).ToText())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
