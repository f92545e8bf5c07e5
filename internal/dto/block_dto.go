package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SaveBlockRequest is the single-block partial-update path: collaborators
// like the AI assistant update one block's payload without a full persist.
type SaveBlockRequest struct {
	Id         *uuid.UUID      `json:"id"` // nil inserts with a fresh id
	Type       string          `json:"type" validate:"required"`
	DocumentId uuid.UUID       `json:"document_id" validate:"required"`
	Payload    json.RawMessage `json:"payload"`
}

type SaveBlockResponse struct {
	Id        uuid.UUID  `json:"id"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ShowBlockResponse struct {
	Id         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	DocumentId uuid.UUID       `json:"document_id"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

// DocumentPersistedMessage is published on the in-process bus after every
// successful persist; the autosave consumer reacts to it.
type DocumentPersistedMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
