// Package transcript models Claude Code JSONL conversation records and
// applies the sanitizer to every text-bearing leaf of their nested content.
package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry represents a single line from a conversation transcript.
type Entry struct {
	Type      string   `json:"type,omitempty"` // "user", "assistant", "system", "summary", etc.
	UUID      string   `json:"uuid,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Message   *Message `json:"message,omitempty"`
}

// Message contains message details for user/assistant entries. The content
// payload is polymorphic in the wire format: either a plain string or an
// ordered list of typed blocks.
type Message struct {
	Role    string  `json:"role,omitempty"`
	Model   string  `json:"model,omitempty"`
	Content Content `json:"content,omitempty"`
}

// Content is a tagged union: TextContent for plain-string payloads,
// BlockContent for block-list payloads.
type Content interface {
	isContent()
}

// TextContent is a plain string payload.
type TextContent string

func (TextContent) isContent() {}

// BlockContent is an ordered list of typed content blocks.
type BlockContent []Block

func (BlockContent) isContent() {}

// Block represents one typed content block ("text", "thinking", "tool_use",
// "tool_result", ...). tool_result blocks may carry a nested content payload
// of the same string-or-blocks shape.
type Block struct {
	Type      string                 `json:"type"`
	Text      string                 `json:"text,omitempty"`
	Thinking  string                 `json:"thinking,omitempty"`
	Name      string                 `json:"name,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Input     map[string]interface{} `json:"input,omitempty"`
	ToolUseID string                 `json:"tool_use_id,omitempty"`
	IsError   bool                   `json:"is_error,omitempty"`
	Content   Content                `json:"-"`
}

// decodeContent picks the Content variant from raw JSON.
func decodeContent(data json.RawMessage) (Content, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return TextContent(s), nil
	case '[':
		var blocks []Block
		if err := json.Unmarshal(trimmed, &blocks); err != nil {
			return nil, err
		}
		return BlockContent(blocks), nil
	default:
		return nil, fmt.Errorf("unsupported content shape: %.20s", trimmed)
	}
}

// encodeContent serializes a Content variant, or nil for absent content.
func encodeContent(c Content) (json.RawMessage, error) {
	switch v := c.(type) {
	case nil:
		return nil, nil
	case TextContent:
		return json.Marshal(string(v))
	case BlockContent:
		return json.Marshal([]Block(v))
	default:
		return nil, fmt.Errorf("unsupported content variant %T", c)
	}
}

// messageWire mirrors Message with raw content for custom JSON handling.
type messageWire struct {
	Role    string          `json:"role,omitempty"`
	Model   string          `json:"model,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var w messageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	content, err := decodeContent(w.Content)
	if err != nil {
		return err
	}
	m.Role = w.Role
	m.Model = w.Model
	m.Content = content
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	content, err := encodeContent(m.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(messageWire{Role: m.Role, Model: m.Model, Content: content})
}

// blockWire mirrors Block with raw nested content.
type blockWire struct {
	Type      string                 `json:"type"`
	Text      string                 `json:"text,omitempty"`
	Thinking  string                 `json:"thinking,omitempty"`
	Name      string                 `json:"name,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Input     map[string]interface{} `json:"input,omitempty"`
	ToolUseID string                 `json:"tool_use_id,omitempty"`
	IsError   bool                   `json:"is_error,omitempty"`
	Content   json.RawMessage        `json:"content,omitempty"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var w blockWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	content, err := decodeContent(w.Content)
	if err != nil {
		return err
	}
	*b = Block{
		Type:      w.Type,
		Text:      w.Text,
		Thinking:  w.Thinking,
		Name:      w.Name,
		ID:        w.ID,
		Input:     w.Input,
		ToolUseID: w.ToolUseID,
		IsError:   w.IsError,
		Content:   content,
	}
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	content, err := encodeContent(b.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockWire{
		Type:      b.Type,
		Text:      b.Text,
		Thinking:  b.Thinking,
		Name:      b.Name,
		ID:        b.ID,
		Input:     b.Input,
		ToolUseID: b.ToolUseID,
		IsError:   b.IsError,
		Content:   content,
	})
}

// ParseEntry parses a single JSONL transcript line.
func ParseEntry(data []byte) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
