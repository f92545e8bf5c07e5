package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BlockStructure struct {
	DocumentId uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Entries    datatypes.JSON `gorm:"type:jsonb"` // ordered [{block_id, block_type}]
	Version    int64          `gorm:"not null;default:0"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (BlockStructure) TableName() string {
	return "block_structures"
}
