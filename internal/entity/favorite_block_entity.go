package entity

import (
	"time"

	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

// FavoriteBlock is a user-curated copy of a block's content kept outside the
// live document graph for reuse.
type FavoriteBlock struct {
	Id        uuid.UUID
	Name      string
	Category  string
	Type      blocktree.BlockType
	Payload   blocktree.Payload
	CreatedAt time.Time
}
