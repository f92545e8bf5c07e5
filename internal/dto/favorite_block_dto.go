package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateFavoriteBlockRequest struct {
	BlockId   uuid.UUID `json:"block_id" validate:"required"`
	BlockType string    `json:"block_type" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Category  string    `json:"category"`
}

type FavoriteBlockResponse struct {
	Id        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	BlockType string          `json:"block_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
