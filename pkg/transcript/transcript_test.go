package transcript

import (
	"encoding/json"
	"testing"
)

// TestParseEntryTextContent tests parsing a plain-string content payload
func TestParseEntryTextContent(t *testing.T) {
	line := `{"type":"user","uuid":"u1","message":{"role":"user","content":"hello there"}}`

	entry, err := ParseEntry([]byte(line))
	if err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if entry.Type != "user" || entry.Message == nil {
		t.Fatalf("Unexpected entry: %+v", entry)
	}

	text, ok := entry.Message.Content.(TextContent)
	if !ok {
		t.Fatalf("Expected TextContent, got %T", entry.Message.Content)
	}
	if string(text) != "hello there" {
		t.Errorf("Expected %q, got %q", "hello there", string(text))
	}
}

// TestParseEntryBlockContent tests parsing a block-list content payload
func TestParseEntryBlockContent(t *testing.T) {
	line := `{"type":"assistant","message":{"role":"assistant","content":[` +
		`{"type":"text","text":"running a command"},` +
		`{"type":"tool_use","name":"Bash","id":"tu1","input":{"command":"ls"}},` +
		`{"type":"tool_result","tool_use_id":"tu1","content":"file.txt"}]}}`

	entry, err := ParseEntry([]byte(line))
	if err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}

	blocks, ok := entry.Message.Content.(BlockContent)
	if !ok {
		t.Fatalf("Expected BlockContent, got %T", entry.Message.Content)
	}
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(blocks))
	}

	if blocks[0].Type != "text" || blocks[0].Text != "running a command" {
		t.Errorf("Unexpected text block: %+v", blocks[0])
	}
	if blocks[1].Type != "tool_use" || blocks[1].Input["command"] != "ls" {
		t.Errorf("Unexpected tool_use block: %+v", blocks[1])
	}

	nested, ok := blocks[2].Content.(TextContent)
	if !ok {
		t.Fatalf("Expected nested TextContent, got %T", blocks[2].Content)
	}
	if string(nested) != "file.txt" {
		t.Errorf("Expected nested text %q, got %q", "file.txt", string(nested))
	}
}

// TestRoundTrip tests that marshal(unmarshal(x)) preserves block count,
// types, and ordering
func TestRoundTrip(t *testing.T) {
	line := `{"type":"assistant","message":{"role":"assistant","content":[` +
		`{"type":"thinking","thinking":"let me check"},` +
		`{"type":"text","text":"done"},` +
		`{"type":"tool_result","tool_use_id":"tu9","is_error":true,"content":[{"type":"text","text":"boom"}]}]}}`

	entry, err := ParseEntry([]byte(line))
	if err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Failed to marshal entry: %v", err)
	}

	again, err := ParseEntry(data)
	if err != nil {
		t.Fatalf("Failed to reparse entry: %v", err)
	}

	blocks := again.Message.Content.(BlockContent)
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks after round trip, got %d", len(blocks))
	}
	for i, expectedType := range []string{"thinking", "text", "tool_result"} {
		if blocks[i].Type != expectedType {
			t.Errorf("Block %d: expected type %s, got %s", i, expectedType, blocks[i].Type)
		}
	}
	if !blocks[2].IsError {
		t.Errorf("Expected is_error preserved")
	}
	nested := blocks[2].Content.(BlockContent)
	if len(nested) != 1 || nested[0].Text != "boom" {
		t.Errorf("Nested content not preserved: %+v", nested)
	}
}

// TestParseEntryNoContent tests entries without a message payload
func TestParseEntryNoContent(t *testing.T) {
	entry, err := ParseEntry([]byte(`{"type":"summary","summary":"fixed the build"}`))
	if err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if entry.Summary != "fixed the build" {
		t.Errorf("Unexpected summary: %q", entry.Summary)
	}
	if entry.Message != nil {
		t.Errorf("Expected nil message, got %+v", entry.Message)
	}
}

// TestParseEntryBadContentShape tests that a non-string, non-list content
// payload is rejected rather than silently dropped
func TestParseEntryBadContentShape(t *testing.T) {
	if _, err := ParseEntry([]byte(`{"message":{"content":42}}`)); err == nil {
		t.Errorf("Expected error for numeric content")
	}
}
