package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlockRow is the shared row shape of every per-type block table. It carries
// no TableName on purpose: the block repository routes each query through the
// table registry with db.Table(...).
type BlockRow struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DocumentId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime;index"`
}
