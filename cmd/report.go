package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/santaclaude2025/scrub/pkg/audit"
	"github.com/santaclaude2025/scrub/pkg/logger"
)

var reportLimit int

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "List recent sanitization runs from the audit database",
	Long: `Report lists recent sanitization runs recorded by 'scrub scan' and
'scrub record': when they ran, what they processed, and how many matches were
redacted. Pass a run ID to see the per-match detail of one run (categories,
line numbers, and redacted forms - original values are never stored).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running report command")

		store, err := audit.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			return printRunDetail(store, args[0])
		}

		runs, err := store.ListRuns(reportLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No sanitization runs recorded yet.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %-20s %3d match(es)  %s\n",
				run.RunID, run.Source, run.Total, humanize.Time(run.Timestamp))
		}

		return nil
	},
}

func printRunDetail(store *audit.Store, runID string) error {
	matches, err := store.RunMatches(runID)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("No matches recorded for run", runID)
		return nil
	}

	for _, m := range matches {
		fmt.Printf("line %-5d %-17s %s\n", m.Line, m.Category, m.Redacted)
	}

	return nil
}

func init() {
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", 20, "maximum number of runs to list")
	rootCmd.AddCommand(reportCmd)
}
