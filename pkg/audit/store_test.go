package audit

import (
	"path/filepath"
	"testing"

	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenPath(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testReport() sanitizer.Report {
	return sanitizer.BuildReport([]sanitizer.Match{
		{Category: sanitizer.CategoryAPIKey, Value: "sk-proj-abc123xyz789ABCDEFGH", Redacted: "sk-pr***FGH", Offset: 14, Line: 1, Confidence: 1.0},
		{Category: sanitizer.CategoryPassword, Value: "MySecretPass123", Redacted: "[PASSWORD]", Offset: 60, Line: 2, Confidence: 1.0},
	})
}

// TestRecordAndListRuns tests the basic audit round trip
func TestRecordAndListRuns(t *testing.T) {
	st := testStore(t)

	runID, err := st.RecordRun("session.jsonl", testReport())
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if runID == "" {
		t.Fatalf("Expected a run ID")
	}

	runs, err := st.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.RunID != runID {
		t.Errorf("Expected run ID %s, got %s", runID, run.RunID)
	}
	if run.Source != "session.jsonl" {
		t.Errorf("Expected source session.jsonl, got %s", run.Source)
	}
	if run.Total != 2 {
		t.Errorf("Expected total 2, got %d", run.Total)
	}
	if run.Summary == "" {
		t.Errorf("Expected a rendered summary")
	}
}

// TestRunMatchesNeverStoreOriginals tests that per-match detail carries the
// redacted form and position only
func TestRunMatchesNeverStoreOriginals(t *testing.T) {
	st := testStore(t)

	runID, err := st.RecordRun("clip.txt", testReport())
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	matches, err := st.RunMatches(runID)
	if err != nil {
		t.Fatalf("RunMatches failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Category != sanitizer.CategoryAPIKey || matches[0].Line != 1 {
		t.Errorf("Unexpected first match: %+v", matches[0])
	}
	if matches[1].Redacted != "[PASSWORD]" {
		t.Errorf("Unexpected second match: %+v", matches[1])
	}
}

// TestListRunsLimit tests that the limit caps the result set
func TestListRunsLimit(t *testing.T) {
	st := testStore(t)

	for _, source := range []string{"a.txt", "b.txt", "c.txt"} {
		if _, err := st.RecordRun(source, sanitizer.BuildReport(nil)); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err := st.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit 2, got %d", len(runs))
	}
}

// TestRunMatchesUnknownRun tests querying a run that was never recorded
func TestRunMatchesUnknownRun(t *testing.T) {
	st := testStore(t)

	matches, err := st.RunMatches("no-such-run")
	if err != nil {
		t.Fatalf("RunMatches failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
}
