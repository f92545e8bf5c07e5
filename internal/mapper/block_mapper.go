package mapper

import (
	"time"

	"nota-be/internal/entity"
	"nota-be/internal/model"
	"nota-be/pkg/blocktree"

	"gorm.io/datatypes"
)

type BlockMapper struct{}

func NewBlockMapper() *BlockMapper {
	return &BlockMapper{}
}

// ToEntity decodes a raw row from one of the per-type tables. The table does
// not store the tag (the table is the tag), so the caller supplies it.
func (m *BlockMapper) ToEntity(row *model.BlockRow, tag blocktree.BlockType) (*entity.Block, error) {
	if row == nil {
		return nil, nil
	}

	payload, err := blocktree.DecodePayload(tag, row.Payload)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if !row.UpdatedAt.IsZero() {
		t := row.UpdatedAt
		updatedAt = &t
	}

	return &entity.Block{
		Id:         row.Id,
		Type:       tag,
		DocumentId: row.DocumentId,
		Payload:    payload,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func (m *BlockMapper) ToModel(b *entity.Block) (*model.BlockRow, error) {
	if b == nil {
		return nil, nil
	}

	raw, err := blocktree.EncodePayload(b.Payload)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.BlockRow{
		Id:         b.Id,
		DocumentId: b.DocumentId,
		Payload:    datatypes.JSON(raw),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func (m *BlockMapper) ToEntities(rows []*model.BlockRow, tag blocktree.BlockType) ([]*entity.Block, error) {
	entities := make([]*entity.Block, 0, len(rows))
	for _, row := range rows {
		e, err := m.ToEntity(row, tag)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
