package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

// TestLoadMissingFile tests that a missing config yields the defaults
func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SCRUB_DIR", t.TempDir())

	cfg, warnings, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if cfg.Enabled {
		t.Errorf("Expected sanitization disabled by default")
	}
	if cfg.Level != sanitizer.LevelBalanced {
		t.Errorf("Expected balanced level, got %s", cfg.Level)
	}
	if cfg.Style != sanitizer.StylePartial {
		t.Errorf("Expected partial style, got %s", cfg.Style)
	}
}

// TestSaveLoadRoundTrip tests config persistence
func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SCRUB_DIR", t.TempDir())

	cfg := sanitizer.DefaultConfig()
	cfg.Enabled = true
	cfg.Level = sanitizer.LevelMinimal
	cfg.Style = sanitizer.StyleHash
	cfg.SanitizePaths = true
	cfg.CustomPatterns = []string{`ACME-[0-9]{6}`}
	cfg.Allowlist = []string{`sk-test-`}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, warnings, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if !loaded.Enabled || loaded.Level != sanitizer.LevelMinimal || loaded.Style != sanitizer.StyleHash {
		t.Errorf("Round trip lost fields: %+v", loaded)
	}
	if !loaded.SanitizePaths {
		t.Errorf("Round trip lost sanitize_paths")
	}
	if len(loaded.CustomPatterns) != 1 || loaded.CustomPatterns[0] != `ACME-[0-9]{6}` {
		t.Errorf("Round trip lost custom patterns: %v", loaded.CustomPatterns)
	}
	if len(loaded.Allowlist) != 1 || loaded.Allowlist[0] != `sk-test-` {
		t.Errorf("Round trip lost allowlist: %v", loaded.Allowlist)
	}
}

// TestLoadInvalidEnums tests that unrecognized level/style values load as
// the defaults with one warning each
func TestLoadInvalidEnums(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRUB_DIR", dir)

	raw := `{"enabled": true, "level": "paranoid", "style": "blackout"}`
	if err := os.WriteFile(filepath.Join(dir, "sanitize.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, warnings, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("Expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg.Level != sanitizer.LevelBalanced {
		t.Errorf("Expected fallback to balanced, got %s", cfg.Level)
	}
	if cfg.Style != sanitizer.StylePartial {
		t.Errorf("Expected fallback to partial, got %s", cfg.Style)
	}
	if !cfg.Enabled {
		t.Errorf("Valid fields must survive validation")
	}
	if len(cfg.Allowlist) == 0 {
		t.Errorf("Expected default allowlist to be filled in")
	}
}

// TestLoadCorruptFile tests that unparseable JSON is a real error
func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRUB_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "sanitize.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, _, err := Load(); err == nil {
		t.Errorf("Expected error for corrupt config file")
	}
}

// TestSetEnabled tests the enable/disable toggle
func TestSetEnabled(t *testing.T) {
	t.Setenv("SCRUB_DIR", t.TempDir())

	if err := SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Enabled {
		t.Errorf("Expected enabled after SetEnabled(true)")
	}

	if err := SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	cfg, _, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Enabled {
		t.Errorf("Expected disabled after SetEnabled(false)")
	}
}

// TestInitRefusesOverwrite tests that Init never clobbers an existing config
func TestInitRefusesOverwrite(t *testing.T) {
	t.Setenv("SCRUB_DIR", t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("First Init failed: %v", err)
	}
	if err := Init(); err == nil {
		t.Errorf("Expected second Init to fail")
	}
}
