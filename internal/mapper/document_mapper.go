package mapper

import (
	"encoding/json"
	"time"

	"nota-be/internal/entity"
	"nota-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) (*entity.Document, error) {
	if d == nil {
		return nil, nil
	}

	var tags []string
	if len(d.Tags) > 0 {
		if err := json.Unmarshal(d.Tags, &tags); err != nil {
			return nil, err
		}
	}

	var versions []entity.VersionSnapshot
	if len(d.Versions) > 0 {
		if err := json.Unmarshal(d.Versions, &versions); err != nil {
			return nil, err
		}
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:         d.Id,
		Title:      d.Title,
		ParentId:   d.ParentId,
		Tags:       tags,
		IsFavorite: d.IsFavorite,
		Versions:   versions,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  d.DeletedAt.Valid,
	}, nil
}

func (m *DocumentMapper) ToModel(d *entity.Document) (*model.Document, error) {
	if d == nil {
		return nil, nil
	}

	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJson, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	versions := d.Versions
	if versions == nil {
		versions = []entity.VersionSnapshot{}
	}
	versionsJson, err := json.Marshal(versions)
	if err != nil {
		return nil, err
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Document{
		Id:         d.Id,
		Title:      d.Title,
		ParentId:   d.ParentId,
		Tags:       datatypes.JSON(tagsJson),
		IsFavorite: d.IsFavorite,
		Versions:   datatypes.JSON(versionsJson),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}, nil
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) ([]*entity.Document, error) {
	entities := make([]*entity.Document, 0, len(docs))
	for _, d := range docs {
		e, err := m.ToEntity(d)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
