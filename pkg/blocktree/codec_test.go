package blocktree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDecodePayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tag     BlockType
		payload Payload
	}{
		{
			name:    "text",
			tag:     TypeText,
			payload: &TextPayload{Text: "hello", Align: "left"},
		},
		{
			name:    "heading",
			tag:     TypeHeading,
			payload: &HeadingPayload{Text: "Intro", Level: 2},
		},
		{
			name:    "code",
			tag:     TypeCode,
			payload: &CodePayload{Source: "print(1)", Language: "python"},
		},
		{
			name: "list",
			tag:  TypeList,
			payload: &ListPayload{
				ListType: "number",
				Items:    []ListItem{{Text: "one"}, {Text: "two"}},
			},
		},
		{
			name: "table",
			tag:  TypeTable,
			payload: &TablePayload{
				Columns: []TableColumn{{Key: "a", Label: "A"}},
				Rows:    []map[string]string{{"a": "1"}},
			},
		},
		{
			name:    "citation",
			tag:     TypeCitation,
			payload: &CitationPayload{ReferenceKey: "smith2020", Locator: "p. 4"},
		},
		{
			name:    "ai generation",
			tag:     TypeAIGeneration,
			payload: &AIGenerationPayload{Prompt: "summarize", Result: "done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := EncodePayload(tt.payload)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, err := DecodePayload(tt.tag, raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			back, err := EncodePayload(decoded)
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if string(back) != string(raw) {
				t.Errorf("round trip mismatch: got %s want %s", back, raw)
			}
			if decoded.BlockType() != tt.tag {
				t.Errorf("tag mismatch: got %s want %s", decoded.BlockType(), tt.tag)
			}
		})
	}
}

func TestDecodePayloadUnknownType(t *testing.T) {
	_, err := DecodePayload("vectorDrawing", []byte(`{}`))
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestDecodePayloadEmptyRaw(t *testing.T) {
	payload, err := DecodePayload(TypeText, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := payload.(*TextPayload); !ok {
		t.Fatalf("expected zero TextPayload, got %T", payload)
	}
}

func TestIsKnownTypeCoversAllFactories(t *testing.T) {
	for _, tag := range KnownTypes() {
		if !IsKnownType(tag) {
			t.Errorf("KnownTypes returned unregistered tag %s", tag)
		}
		payload, err := NewPayload(tag)
		if err != nil {
			t.Fatalf("NewPayload(%s): %v", tag, err)
		}
		if payload.BlockType() != tag {
			t.Errorf("payload for %s reports type %s", tag, payload.BlockType())
		}
	}
}

func TestTreeJSONRoundTrip(t *testing.T) {
	tree := Tree{
		Nodes: []Node{
			{Id: uuid.New(), Type: TypeHeading, Payload: &HeadingPayload{Text: "Title", Level: 1}},
			{Id: uuid.New(), Type: TypeText, Payload: &TextPayload{Text: "body"}},
			{Id: uuid.New(), Type: TypeHorizontalRule, Payload: &HorizontalRulePayload{}},
		},
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Tree
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(decoded.Nodes) != len(tree.Nodes) {
		t.Fatalf("node count mismatch: got %d want %d", len(decoded.Nodes), len(tree.Nodes))
	}
	for i := range tree.Nodes {
		if decoded.Nodes[i].Id != tree.Nodes[i].Id {
			t.Errorf("node %d id mismatch", i)
		}
		if decoded.Nodes[i].Type != tree.Nodes[i].Type {
			t.Errorf("node %d type mismatch", i)
		}
	}
}

func TestTreeUnmarshalUnknownTypeFails(t *testing.T) {
	raw := []byte(`{"blocks":[{"type":"hologram","payload":{}}]}`)
	var tree Tree
	err := json.Unmarshal(raw, &tree)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestTreeCloneIsDeep(t *testing.T) {
	original := &Tree{
		Nodes: []Node{
			{Id: uuid.New(), Type: TypeList, Payload: &ListPayload{Items: []ListItem{{Text: "a"}}}},
		},
	}

	clone := original.Clone()
	clone.Nodes[0].Payload.(*ListPayload).Items[0].Text = "mutated"

	if original.Nodes[0].Payload.(*ListPayload).Items[0].Text != "a" {
		t.Fatal("clone shares list items with original")
	}
}
