package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nota-be/internal/entity"
	"nota-be/internal/mapper"
	"nota-be/internal/model"
	"nota-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockStructureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BlockStructureMapper
}

func NewBlockStructureRepository(db *gorm.DB) contract.BlockStructureRepository {
	return &BlockStructureRepositoryImpl{
		db:     db,
		mapper: mapper.NewBlockStructureMapper(),
	}
}

func (r *BlockStructureRepositoryImpl) Get(ctx context.Context, documentId uuid.UUID) (*entity.BlockStructure, error) {
	var m model.BlockStructure
	err := r.db.WithContext(ctx).Where("document_id = ?", documentId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *BlockStructureRepositoryImpl) GetEntries(ctx context.Context, documentId uuid.UUID) ([]entity.BlockRef, error) {
	structure, err := r.Get(ctx, documentId)
	if err != nil {
		return nil, err
	}
	if structure == nil {
		return []entity.BlockRef{}, nil
	}
	return structure.Entries, nil
}

func (r *BlockStructureRepositoryImpl) SetEntries(ctx context.Context, documentId uuid.UUID, entries []entity.BlockRef) error {
	if entries == nil {
		entries = []entity.BlockRef{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	m := model.BlockStructure{
		DocumentId: documentId,
		Entries:    datatypes.JSON(raw),
		Version:    1,
		UpdatedAt:  time.Now(),
	}

	// Wholesale replace; the version counter bumps on every overwrite.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "document_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"entries":    m.Entries,
				"version":    gorm.Expr("block_structures.version + 1"),
				"updated_at": m.UpdatedAt,
			}),
		}).
		Create(&m).Error
}

func (r *BlockStructureRepositoryImpl) Delete(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.BlockStructure{}).Error
}
