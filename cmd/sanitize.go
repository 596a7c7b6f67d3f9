package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/santaclaude2025/scrub/pkg/audit"
	"github.com/santaclaude2025/scrub/pkg/config"
	"github.com/santaclaude2025/scrub/pkg/logger"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default sanitizer configuration",
	Long: `Creates ~/.scrub/sanitize.json with the default configuration: balanced
detection, partial redaction style, sanitization disabled until you run
'scrub enable'. Edit the file directly to add custom patterns or allowlist
entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running init command")

		if err := config.Init(); err != nil {
			return err
		}

		fmt.Println("✓ Created config at:", config.Path())
		fmt.Println()
		fmt.Println("Sanitization is disabled by default. To enable it, run:")
		fmt.Println("  scrub enable")
		fmt.Println()
		fmt.Println("To customize patterns, edit the config file directly:")
		fmt.Printf("  vim %s\n", config.Path())

		return nil
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable sanitization",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running enable command")

		if !config.Exists() {
			fmt.Println("No config found. Initializing with defaults...")
			if err := config.Init(); err != nil {
				logger.Error("Failed to initialize config: %v", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}
		}

		if err := config.SetEnabled(true); err != nil {
			logger.Error("Failed to enable sanitization: %v", err)
			return fmt.Errorf("failed to enable sanitization: %w", err)
		}

		fmt.Println("✓ Sanitization enabled")
		fmt.Println()
		fmt.Println("Secrets will now be redacted by 'scrub scan' and 'scrub record'.")
		fmt.Println("Config file:", config.Path())

		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable sanitization",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running disable command")

		if err := config.SetEnabled(false); err != nil {
			logger.Error("Failed to disable sanitization: %v", err)
			return fmt.Errorf("failed to disable sanitization: %w", err)
		}

		fmt.Println("✓ Sanitization disabled")
		fmt.Println()
		fmt.Println("Text will pass through unchanged. To re-enable, run: scrub enable")

		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sanitizer configuration and state",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running status command")

		fmt.Println("=== Scrub Status ===")
		fmt.Println()

		cfg, warnings, err := config.Load()
		if err != nil {
			return err
		}

		if cfg.Enabled {
			fmt.Println("Status:  ✓ Enabled")
		} else {
			fmt.Println("Status:  ✗ Disabled")
		}
		fmt.Println("Config: ", config.Path())
		fmt.Println("Level:  ", cfg.Level)
		fmt.Println("Style:  ", cfg.Style)
		fmt.Printf("Custom patterns:   %d\n", len(cfg.CustomPatterns))
		fmt.Printf("Allowlist entries: %d\n", len(cfg.Allowlist))
		fmt.Printf("Path sanitization: %v\n", cfg.SanitizePaths)

		printWarnings(warnings)

		fmt.Println()
		fmt.Println("Log file:", logger.Get().LogPath())
		printAuditStatus()

		return nil
	},
}

// printAuditStatus shows the audit database size and the most recent run.
func printAuditStatus() {
	store, err := audit.Open()
	if err != nil {
		return
	}
	defer store.Close()

	if info, err := os.Stat(store.Path()); err == nil {
		fmt.Printf("Audit db: %s (%s)\n", store.Path(), humanize.Bytes(uint64(info.Size())))
	}

	runs, err := store.ListRuns(1)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Printf("Last run: %s, %d match(es), %s\n",
		runs[0].Source, runs[0].Total, humanize.Time(runs[0].Timestamp))
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(statusCmd)
}
