package mapper

import (
	"nota-be/internal/entity"
	"nota-be/internal/model"
	"nota-be/pkg/blocktree"

	"gorm.io/datatypes"
)

type FavoriteBlockMapper struct{}

func NewFavoriteBlockMapper() *FavoriteBlockMapper {
	return &FavoriteBlockMapper{}
}

func (m *FavoriteBlockMapper) ToEntity(f *model.FavoriteBlock) (*entity.FavoriteBlock, error) {
	if f == nil {
		return nil, nil
	}

	tag := blocktree.BlockType(f.BlockType)
	payload, err := blocktree.DecodePayload(tag, f.Payload)
	if err != nil {
		return nil, err
	}

	return &entity.FavoriteBlock{
		Id:        f.Id,
		Name:      f.Name,
		Category:  f.Category,
		Type:      tag,
		Payload:   payload,
		CreatedAt: f.CreatedAt,
	}, nil
}

func (m *FavoriteBlockMapper) ToModel(f *entity.FavoriteBlock) (*model.FavoriteBlock, error) {
	if f == nil {
		return nil, nil
	}

	raw, err := blocktree.EncodePayload(f.Payload)
	if err != nil {
		return nil, err
	}

	return &model.FavoriteBlock{
		Id:        f.Id,
		Name:      f.Name,
		Category:  f.Category,
		BlockType: string(f.Type),
		Payload:   datatypes.JSON(raw),
		CreatedAt: f.CreatedAt,
	}, nil
}

func (m *FavoriteBlockMapper) ToEntities(rows []*model.FavoriteBlock) ([]*entity.FavoriteBlock, error) {
	entities := make([]*entity.FavoriteBlock, 0, len(rows))
	for _, row := range rows {
		e, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
