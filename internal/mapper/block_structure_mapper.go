package mapper

import (
	"encoding/json"

	"nota-be/internal/entity"
	"nota-be/internal/model"

	"gorm.io/datatypes"
)

type BlockStructureMapper struct{}

func NewBlockStructureMapper() *BlockStructureMapper {
	return &BlockStructureMapper{}
}

func (m *BlockStructureMapper) ToEntity(s *model.BlockStructure) (*entity.BlockStructure, error) {
	if s == nil {
		return nil, nil
	}

	var entries []entity.BlockRef
	if len(s.Entries) > 0 {
		if err := json.Unmarshal(s.Entries, &entries); err != nil {
			return nil, err
		}
	}

	return &entity.BlockStructure{
		DocumentId: s.DocumentId,
		Entries:    entries,
		Version:    s.Version,
		UpdatedAt:  s.UpdatedAt,
	}, nil
}

func (m *BlockStructureMapper) ToModel(s *entity.BlockStructure) (*model.BlockStructure, error) {
	if s == nil {
		return nil, nil
	}

	entries := s.Entries
	if entries == nil {
		entries = []entity.BlockRef{}
	}
	entriesJson, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return &model.BlockStructure{
		DocumentId: s.DocumentId,
		Entries:    datatypes.JSON(entriesJson),
		Version:    s.Version,
		UpdatedAt:  s.UpdatedAt,
	}, nil
}
