package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/santaclaude2025/scrub/pkg/config"
	"github.com/santaclaude2025/scrub/pkg/logger"
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
	"github.com/santaclaude2025/scrub/pkg/transcript"
)

// maxTranscriptLine bounds the scanner buffer; transcript lines with large
// tool results routinely exceed bufio's 64KB default.
const maxTranscriptLine = 10 * 1024 * 1024

var (
	recordOutput  string
	recordForce   bool
	recordNoAudit bool
)

var recordCmd = &cobra.Command{
	Use:   "record [file.jsonl]",
	Short: "Sanitize a JSONL conversation transcript",
	Long: `Record reads a Claude Code transcript (JSONL, one conversation entry per
line), sanitizes every text-bearing field of every entry - message content,
content blocks, tool inputs, tool results - and writes the cleaned transcript
to stdout or to the file given with --output.

Lines that do not parse as transcript entries are passed through unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running record command")

		text, source, err := readInput(args)
		if err != nil {
			return err
		}

		cfg, warnings, err := config.Load()
		if err != nil {
			return err
		}
		if recordForce {
			cfg.Enabled = true
		}

		s := sanitizer.New(cfg)
		if !s.Enabled() {
			fmt.Fprintln(os.Stderr, "Sanitization is disabled; writing input unchanged.")
			fmt.Fprintln(os.Stderr, "Run 'scrub enable' or pass --force to redact.")
			return writeOutput(recordOutput, text)
		}

		cleaned, matches, err := sanitizeTranscript(text, s)
		if err != nil {
			return err
		}
		if err := writeOutput(recordOutput, cleaned); err != nil {
			return err
		}

		report := sanitizer.BuildReport(matches)
		fmt.Fprint(os.Stderr, report.ToText())
		printWarnings(append(warnings, s.Warnings()...))

		if !recordNoAudit {
			recordRun(source, report)
		}

		return nil
	},
}

func init() {
	recordCmd.Flags().StringVarP(&recordOutput, "output", "o", "", "write cleaned transcript to this file instead of stdout")
	recordCmd.Flags().BoolVar(&recordForce, "force", false, "sanitize even when disabled in the config")
	recordCmd.Flags().BoolVar(&recordNoAudit, "no-audit", false, "skip recording the run in the audit database")
	rootCmd.AddCommand(recordCmd)
}

// sanitizeTranscript processes a transcript line by line, preserving blank
// and unparseable lines verbatim.
func sanitizeTranscript(text string, s *sanitizer.Sanitizer) (string, []sanitizer.Match, error) {
	var out strings.Builder
	var matches []sanitizer.Match

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), maxTranscriptLine)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		entry, err := transcript.ParseEntry([]byte(line))
		if err != nil {
			logger.Debug("Passing through unparseable line: %v", err)
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		cleanedEntry, found := transcript.SanitizeEntry(*entry, s)
		matches = append(matches, found...)

		data, err := json.Marshal(cleanedEntry)
		if err != nil {
			return "", nil, fmt.Errorf("failed to marshal entry: %w", err)
		}
		out.Write(data)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	return out.String(), matches, nil
}
