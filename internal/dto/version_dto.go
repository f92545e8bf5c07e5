package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVersionRequest struct {
	DocumentId uuid.UUID
	Name       string `json:"name" validate:"required"`
}

type VersionResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type RestoreVersionResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	VersionId  uuid.UUID `json:"version_id"`
}
