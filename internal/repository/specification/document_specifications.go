package specification

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByParentID struct {
	ParentID uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentID)
}

// RootDocuments selects documents without a parent (top of the document tree)
type RootDocuments struct{}

func (s RootDocuments) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id IS NULL")
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// ByTag matches documents whose jsonb tag set contains the tag
type ByTag struct {
	Tag string
}

func (s ByTag) Apply(db *gorm.DB) *gorm.DB {
	needle, _ := json.Marshal([]string{s.Tag})
	return db.Where("tags @> ?", string(needle))
}

type FavoritesOnly struct{}

func (s FavoritesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = true")
}
