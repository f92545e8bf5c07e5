package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Title    string     `json:"title" validate:"required"`
	ParentId *uuid.UUID `json:"parent_id"`
	Tags     []string   `json:"tags"`
}

type CreateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

// BreadcrumbItem is one document in the ancestry path, root first.
type BreadcrumbItem struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type ShowDocumentResponse struct {
	Id         uuid.UUID        `json:"id"`
	Title      string           `json:"title"`
	ParentId   *uuid.UUID       `json:"parent_id"`
	Tags       []string         `json:"tags"`
	IsFavorite bool             `json:"is_favorite"`
	Breadcrumb []BreadcrumbItem `json:"breadcrumb"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at"`
}

type UpdateDocumentRequest struct {
	Id         uuid.UUID
	Title      string   `json:"title" validate:"required"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"is_favorite"`
}

type UpdateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type MoveDocumentRequest struct {
	Id       uuid.UUID
	ParentId *uuid.UUID `json:"parent_id"` // nil moves to top level
}

type MoveDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type ListDocumentsRequest struct {
	ParentId      *uuid.UUID
	Tag           string
	FavoritesOnly bool
}

type DocumentListItem struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	ParentId   *uuid.UUID `json:"parent_id"`
	Tags       []string   `json:"tags"`
	IsFavorite bool       `json:"is_favorite"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
