package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockStructure is the authoritative statement of block order and
// composition for one document. It is replaced wholesale on every write,
// never patched in place.
type BlockStructure struct {
	DocumentId uuid.UUID
	Entries    []BlockRef
	Version    int64
	UpdatedAt  time.Time
}
