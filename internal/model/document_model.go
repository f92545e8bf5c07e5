package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Document struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(255);not null;index"`
	ParentId   *uuid.UUID     `gorm:"type:uuid;index"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	IsFavorite bool           `gorm:"not null;default:false;index"`
	Versions   datatypes.JSON `gorm:"type:jsonb"` // embedded snapshot list, not a separate table
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime;index"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
