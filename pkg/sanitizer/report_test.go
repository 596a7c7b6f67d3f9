package sanitizer

import (
	"strings"
	"testing"
)

// TestBuildReport tests the derived aggregates
func TestBuildReport(t *testing.T) {
	s := New(enabledConfig(LevelBalanced, StyleSimple))
	input := "sk-proj-abc123xyz789ABCDEFGH\npassword = MySecretPass123\nAPI_KEY=abcd1234efgh\n"

	report := BuildReport(s.PreviewMatches(input))
	if report.Total != 3 {
		t.Fatalf("Expected total 3, got %d", report.Total)
	}
	expected := map[Category]int{
		CategoryAPIKey:   1,
		CategoryPassword: 1,
		CategoryEnvVar:   1,
	}
	for cat, n := range expected {
		if report.Counts[cat] != n {
			t.Errorf("Expected %d %s, got %d", n, cat, report.Counts[cat])
		}
	}
}

// TestReportToText tests the deterministic rendering: total first, then
// categories in priority order, custom last
func TestReportToText(t *testing.T) {
	matches := []Match{
		{Category: CategoryCustom},
		{Category: CategoryEnvVar},
		{Category: CategoryAPIKey},
		{Category: CategoryAPIKey},
	}

	text := BuildReport(matches).ToText()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), text)
	}
	if lines[0] != "4 match(es) redacted" {
		t.Errorf("Unexpected total line: %q", lines[0])
	}

	// One line per non-empty category, priority order, custom last.
	order := []Category{CategoryAPIKey, CategoryEnvVar, CategoryCustom}
	for i, cat := range order {
		if !strings.Contains(lines[i+1], string(cat)) {
			t.Errorf("Line %d: expected category %s, got %q", i+1, cat, lines[i+1])
		}
	}
	if !strings.Contains(lines[1], "2") {
		t.Errorf("Expected api_key count 2 in %q", lines[1])
	}
}

// TestReportEmpty tests rendering with no matches
func TestReportEmpty(t *testing.T) {
	text := BuildReport(nil).ToText()
	if text != "0 match(es) redacted\n" {
		t.Errorf("Unexpected empty report: %q", text)
	}
}
