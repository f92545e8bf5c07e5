package blocktree

import (
	"github.com/google/uuid"
)

// BlockType is the closed-set string tag selecting a block's payload schema
// and its storage table.
type BlockType string

const (
	TypeText           BlockType = "text"
	TypeHeading        BlockType = "heading"
	TypeCode           BlockType = "code"
	TypeMath           BlockType = "math"
	TypeQuote          BlockType = "quote"
	TypeList           BlockType = "list"
	TypeHorizontalRule BlockType = "horizontalRule"
	TypeImage          BlockType = "image"
	TypeTable          BlockType = "notaTable"
	TypeEmbed          BlockType = "embed"
	TypeCitation       BlockType = "citation"
	TypeBibliography   BlockType = "bibliography"
	TypeAIGeneration   BlockType = "aiGeneration"
	TypeExecutableCode BlockType = "executableCode"
	TypeSubfigure      BlockType = "subfigure"
	TypeScatterPlot    BlockType = "scatterPlot"
)

// Node is one block-level node of the editor's content tree. Composite
// content (table cells, subfigure images) lives inside the payload, not as
// separate nodes, so a document's tree is the ordered node sequence under an
// implicit root.
type Node struct {
	Id      uuid.UUID
	Type    BlockType
	Payload Payload
}

// Tree is the fully resolved content of one document, in document order.
type Tree struct {
	Nodes []Node
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Version snapshots rely on this.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	nodes := make([]Node, len(t.Nodes))
	for i, n := range t.Nodes {
		nodes[i] = Node{Id: n.Id, Type: n.Type}
		if n.Payload != nil {
			nodes[i].Payload = n.Payload.Clone()
		}
	}
	return &Tree{Nodes: nodes}
}

func (t *Tree) IsEmpty() bool {
	return t == nil || len(t.Nodes) == 0
}
