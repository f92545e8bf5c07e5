package entity

import (
	"time"

	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

// Block is the atomic content unit. Its type is immutable after creation;
// changing type means delete and recreate.
type Block struct {
	Id         uuid.UUID
	Type       blocktree.BlockType
	DocumentId uuid.UUID
	Payload    blocktree.Payload
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// BlockRef is one entry of a document's structure manifest: a weak reference
// to a block row, not ownership.
type BlockRef struct {
	BlockId   uuid.UUID           `json:"block_id"`
	BlockType blocktree.BlockType `json:"block_type"`
}
