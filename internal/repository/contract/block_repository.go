package contract

import (
	"context"

	"nota-be/internal/entity"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

// BlockRepository is type-routed CRUD over the per-type block tables. Every
// operation resolves its table through the block table registry.
type BlockRepository interface {
	// Save upserts by id, assigning a fresh id when unset, and refreshes the
	// block's UpdatedAt. Returns the persisted id.
	Save(ctx context.Context, block *entity.Block) (uuid.UUID, error)

	// Get returns (nil, nil) when the block is absent: a structure entry
	// pointing at a deleted block is a recoverable state, not an error.
	Get(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) (*entity.Block, error)

	// GetAllByDocument returns the document's blocks of one type, unordered;
	// ordering belongs to the structure store.
	GetAllByDocument(ctx context.Context, documentId uuid.UUID, tag blocktree.BlockType) ([]*entity.Block, error)

	// Delete is idempotent; deleting a nonexistent block is not an error.
	Delete(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) error

	// GetAllForDocument fans out across every registered type table and
	// concatenates the results.
	GetAllForDocument(ctx context.Context, documentId uuid.UUID) ([]*entity.Block, error)

	// DeleteAllForDocument fans a delete out across every type table. It is a
	// best-effort cascade: completed deletes are not rolled back on a later
	// failure, but any failure is surfaced. Returns rows deleted.
	DeleteAllForDocument(ctx context.Context, documentId uuid.UUID) (int64, error)
}
