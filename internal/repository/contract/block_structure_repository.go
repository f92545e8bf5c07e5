package contract

import (
	"context"

	"nota-be/internal/entity"

	"github.com/google/uuid"
)

// BlockStructureRepository keeps the per-document ordering manifest.
type BlockStructureRepository interface {
	// Get returns (nil, nil) for a document with no structure yet.
	Get(ctx context.Context, documentId uuid.UUID) (*entity.BlockStructure, error)

	// GetEntries returns the ordered refs, empty for a new document.
	GetEntries(ctx context.Context, documentId uuid.UUID) ([]entity.BlockRef, error)

	// SetEntries replaces the ordering wholesale and bumps the structure
	// version. Reordering, insertion and deletion are all expressed as one
	// full replace to avoid partial-order corruption.
	SetEntries(ctx context.Context, documentId uuid.UUID, entries []entity.BlockRef) error

	// Delete removes the manifest; idempotent.
	Delete(ctx context.Context, documentId uuid.UUID) error
}
