package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/santaclaude2025/scrub/pkg/audit"
	"github.com/santaclaude2025/scrub/pkg/config"
	"github.com/santaclaude2025/scrub/pkg/logger"
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

var (
	scanOutput  string
	scanForce   bool
	scanNoAudit bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Sanitize text from a file or stdin",
	Long: `Scan reads text from a file (or stdin when no file is given), redacts every
detected secret according to the configured style, and writes the cleaned text
to stdout or to the file given with --output. A summary of what was redacted
is printed to stderr, and the run is recorded in the audit database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running scan command")

		text, source, err := readInput(args)
		if err != nil {
			return err
		}

		cfg, warnings, err := config.Load()
		if err != nil {
			return err
		}
		if scanForce {
			cfg.Enabled = true
		}

		s := sanitizer.New(cfg)
		if !s.Enabled() {
			fmt.Fprintln(os.Stderr, "Sanitization is disabled; writing input unchanged.")
			fmt.Fprintln(os.Stderr, "Run 'scrub enable' or pass --force to redact.")
			return writeOutput(scanOutput, text)
		}

		cleaned, matches := s.SanitizeText(text)
		if err := writeOutput(scanOutput, cleaned); err != nil {
			return err
		}

		report := sanitizer.BuildReport(matches)
		fmt.Fprint(os.Stderr, report.ToText())
		printWarnings(append(warnings, s.Warnings()...))

		if !scanNoAudit {
			recordRun(source, report)
		}

		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write cleaned text to this file instead of stdout")
	scanCmd.Flags().BoolVar(&scanForce, "force", false, "sanitize even when disabled in the config")
	scanCmd.Flags().BoolVar(&scanNoAudit, "no-audit", false, "skip recording the run in the audit database")
	rootCmd.AddCommand(scanCmd)
}

// readInput returns the text to sanitize and a display name for its source.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := fmt.Print(text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// printWarnings surfaces accumulated warnings at the end of a run without
// having interrupted processing.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}

// recordRun stores the report in the audit database. Audit failures are
// logged but never fail the run; redaction already happened.
func recordRun(source string, report sanitizer.Report) {
	store, err := audit.Open()
	if err != nil {
		logger.Error("Failed to open audit store: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(source, report); err != nil {
		logger.Error("Failed to record audit run: %v", err)
	}
}
