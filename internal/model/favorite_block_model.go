package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FavoriteBlock struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null;index"`
	Category  string         `gorm:"type:varchar(100);index"`
	BlockType string         `gorm:"type:varchar(50);not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (FavoriteBlock) TableName() string {
	return "favorite_blocks"
}
