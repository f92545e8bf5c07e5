package entity

import (
	"time"

	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

type Document struct {
	Id         uuid.UUID
	Title      string
	ParentId   *uuid.UUID // documents form a tree; nil means top level
	Tags       []string
	IsFavorite bool
	Versions   []VersionSnapshot // newest last; embedded on the document row
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

// VersionSnapshot is an immutable named copy of a document's fully resolved
// tree at a point in time. It owns its deep copy and shares no mutable state
// with live blocks.
type VersionSnapshot struct {
	Id        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Tree      *blocktree.Tree `json:"tree"`
}
