package blocktree

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownType is returned when decoding meets a type tag outside the
// registered set. The storage layer maps it onto its own taxonomy.
var ErrUnknownType = fmt.Errorf("blocktree: unknown block type")

// payloadFactories binds each type tag to its payload constructor. Adding a
// block type means adding the payload struct and one entry here.
var payloadFactories = map[BlockType]func() Payload{
	TypeText:           func() Payload { return &TextPayload{} },
	TypeHeading:        func() Payload { return &HeadingPayload{} },
	TypeCode:           func() Payload { return &CodePayload{} },
	TypeMath:           func() Payload { return &MathPayload{} },
	TypeQuote:          func() Payload { return &QuotePayload{} },
	TypeList:           func() Payload { return &ListPayload{} },
	TypeHorizontalRule: func() Payload { return &HorizontalRulePayload{} },
	TypeImage:          func() Payload { return &ImagePayload{} },
	TypeTable:          func() Payload { return &TablePayload{} },
	TypeEmbed:          func() Payload { return &EmbedPayload{} },
	TypeCitation:       func() Payload { return &CitationPayload{} },
	TypeBibliography:   func() Payload { return &BibliographyPayload{} },
	TypeAIGeneration:   func() Payload { return &AIGenerationPayload{} },
	TypeExecutableCode: func() Payload { return &ExecutableCodePayload{} },
	TypeSubfigure:      func() Payload { return &SubfigurePayload{} },
	TypeScatterPlot:    func() Payload { return &ScatterPlotPayload{} },
}

// KnownTypes returns the registered tag set. Order is unspecified.
func KnownTypes() []BlockType {
	types := make([]BlockType, 0, len(payloadFactories))
	for t := range payloadFactories {
		types = append(types, t)
	}
	return types
}

// IsKnownType reports whether tag is in the registered set.
func IsKnownType(tag BlockType) bool {
	_, ok := payloadFactories[tag]
	return ok
}

// NewPayload returns a zero payload for the tag, or ErrUnknownType.
func NewPayload(tag BlockType) (Payload, error) {
	factory, ok := payloadFactories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	return factory(), nil
}

// DecodePayload unmarshals raw JSON into the payload struct for the tag.
func DecodePayload(tag BlockType, raw []byte) (Payload, error) {
	payload, err := NewPayload(tag)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", tag, err)
	}
	return payload, nil
}

// EncodePayload marshals a payload to its JSON row representation.
func EncodePayload(payload Payload) ([]byte, error) {
	return json.Marshal(payload)
}

type nodeEnvelope struct {
	Id      uuid.UUID       `json:"id,omitempty"`
	Type    BlockType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	raw, err := EncodePayload(n.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(nodeEnvelope{
		Id:      n.Id,
		Type:    n.Type,
		Payload: raw,
	})
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var env nodeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	payload, err := DecodePayload(env.Type, env.Payload)
	if err != nil {
		return err
	}
	n.Id = env.Id
	n.Type = env.Type
	n.Payload = payload
	return nil
}

type treeEnvelope struct {
	Blocks []Node `json:"blocks"`
}

func (t Tree) MarshalJSON() ([]byte, error) {
	blocks := t.Nodes
	if blocks == nil {
		blocks = []Node{}
	}
	return json.Marshal(treeEnvelope{Blocks: blocks})
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	var env treeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	t.Nodes = env.Blocks
	return nil
}
