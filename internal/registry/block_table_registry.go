package registry

import (
	"nota-be/internal/apperror"
	"nota-be/pkg/blocktree"
)

// TableBinding ties a block type tag to the table holding its rows.
type TableBinding struct {
	Type  blocktree.BlockType
	Table string
}

// bindings is the single registration point. Adding a block type means adding
// its payload in pkg/blocktree and one entry here; nothing else changes.
var bindings = []TableBinding{
	{blocktree.TypeText, "text_blocks"},
	{blocktree.TypeHeading, "heading_blocks"},
	{blocktree.TypeCode, "code_blocks"},
	{blocktree.TypeMath, "math_blocks"},
	{blocktree.TypeQuote, "quote_blocks"},
	{blocktree.TypeList, "list_blocks"},
	{blocktree.TypeHorizontalRule, "horizontal_rule_blocks"},
	{blocktree.TypeImage, "image_blocks"},
	{blocktree.TypeTable, "nota_table_blocks"},
	{blocktree.TypeEmbed, "embed_blocks"},
	{blocktree.TypeCitation, "citation_blocks"},
	{blocktree.TypeBibliography, "bibliography_blocks"},
	{blocktree.TypeAIGeneration, "ai_generation_blocks"},
	{blocktree.TypeExecutableCode, "executable_code_blocks"},
	{blocktree.TypeSubfigure, "subfigure_blocks"},
	{blocktree.TypeScatterPlot, "scatter_plot_blocks"},
}

// BlockTableRegistry resolves a block type tag to its storage table. Built
// once at startup; purely a lookup afterwards.
type BlockTableRegistry struct {
	tables map[blocktree.BlockType]string
	order  []TableBinding
}

func NewBlockTableRegistry() *BlockTableRegistry {
	tables := make(map[blocktree.BlockType]string, len(bindings))
	for _, b := range bindings {
		tables[b.Type] = b.Table
	}
	return &BlockTableRegistry{
		tables: tables,
		order:  bindings,
	}
}

// ResolveTable returns the table for the tag, or ErrUnknownBlockType.
func (r *BlockTableRegistry) ResolveTable(tag blocktree.BlockType) (string, error) {
	table, ok := r.tables[tag]
	if !ok {
		return "", apperror.UnknownBlockType(string(tag))
	}
	return table, nil
}

// Bindings returns all registered bindings in registration order. The block
// repository fans out over this for whole-document queries and deletes.
func (r *BlockTableRegistry) Bindings() []TableBinding {
	out := make([]TableBinding, len(r.order))
	copy(out, r.order)
	return out
}
