// Package config loads and stores the scrub sanitizer configuration at
// ~/.scrub/sanitize.json. It owns validation of the level/style enums:
// unrecognized values load as the documented defaults with a warning, never
// as an error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santaclaude2025/scrub/pkg/logger"
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

const configFileName = "sanitize.json"

// Dir returns the scrub state directory (~/.scrub, or SCRUB_DIR if set).
func Dir() string {
	if dir := os.Getenv("SCRUB_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scrub")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// Exists reports whether a config file has been created.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file and validates it. A missing file yields the
// defaults (sanitization disabled) with no error. Invalid level/style values
// are replaced with defaults; the substitutions are returned as warnings.
func Load() (sanitizer.Config, []string, error) {
	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return sanitizer.DefaultConfig(), nil, nil
	}
	if err != nil {
		return sanitizer.DefaultConfig(), nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg sanitizer.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return sanitizer.DefaultConfig(), nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg, warnings := Validate(cfg)
	return cfg, warnings, nil
}

// Validate substitutes defaults for unrecognized enum values and ensures the
// allowlist is populated. Warnings describe every substitution made.
func Validate(cfg sanitizer.Config) (sanitizer.Config, []string) {
	var warnings []string

	if !sanitizer.ValidLevel(cfg.Level) {
		w := fmt.Sprintf("unrecognized level %q, using %q", cfg.Level, sanitizer.LevelBalanced)
		logger.Warn("%s", w)
		warnings = append(warnings, w)
		cfg.Level = sanitizer.LevelBalanced
	}
	if !sanitizer.ValidStyle(cfg.Style) {
		w := fmt.Sprintf("unrecognized style %q, using %q", cfg.Style, sanitizer.StylePartial)
		logger.Warn("%s", w)
		warnings = append(warnings, w)
		cfg.Style = sanitizer.StylePartial
	}
	if len(cfg.Allowlist) == 0 {
		cfg.Allowlist = sanitizer.DefaultAllowlist()
	}

	return cfg, warnings
}

// Save writes the config file, creating the state directory if needed.
func Save(cfg sanitizer.Config) error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("could not determine config directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init creates a config file with defaults. It refuses to overwrite an
// existing file.
func Init() error {
	if Exists() {
		return fmt.Errorf("config file already exists at %s", Path())
	}
	return Save(sanitizer.DefaultConfig())
}

// SetEnabled loads the config, flips the enabled flag, and saves it back.
func SetEnabled(enabled bool) error {
	cfg, _, err := Load()
	if err != nil {
		return err
	}
	cfg.Enabled = enabled
	return Save(cfg)
}
