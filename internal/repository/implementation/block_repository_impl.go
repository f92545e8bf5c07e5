package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nota-be/internal/entity"
	"nota-be/internal/mapper"
	"nota-be/internal/model"
	"nota-be/internal/registry"
	"nota-be/internal/repository/contract"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepositoryImpl struct {
	db       *gorm.DB
	registry *registry.BlockTableRegistry
	mapper   *mapper.BlockMapper
}

func NewBlockRepository(db *gorm.DB, reg *registry.BlockTableRegistry) contract.BlockRepository {
	return &BlockRepositoryImpl{
		db:       db,
		registry: reg,
		mapper:   mapper.NewBlockMapper(),
	}
}

func (r *BlockRepositoryImpl) Save(ctx context.Context, block *entity.Block) (uuid.UUID, error) {
	table, err := r.registry.ResolveTable(block.Type)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	if block.Id == uuid.Nil {
		block.Id = uuid.New()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = now
	}
	block.UpdatedAt = &now

	m, err := r.mapper.ToModel(block)
	if err != nil {
		return uuid.Nil, err
	}

	// Upsert keyed by id so retried writes never duplicate rows.
	err = r.db.WithContext(ctx).Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document_id", "payload", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return uuid.Nil, err
	}

	return block.Id, nil
}

func (r *BlockRepositoryImpl) Get(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) (*entity.Block, error) {
	table, err := r.registry.ResolveTable(tag)
	if err != nil {
		return nil, err
	}

	var row model.BlockRow
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row, tag)
}

func (r *BlockRepositoryImpl) GetAllByDocument(ctx context.Context, documentId uuid.UUID, tag blocktree.BlockType) ([]*entity.Block, error) {
	table, err := r.registry.ResolveTable(tag)
	if err != nil {
		return nil, err
	}

	var rows []*model.BlockRow
	err = r.db.WithContext(ctx).Table(table).Where("document_id = ?", documentId).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(rows, tag)
}

func (r *BlockRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) error {
	table, err := r.registry.ResolveTable(tag)
	if err != nil {
		return err
	}
	// Hard delete; zero rows affected is fine.
	return r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&model.BlockRow{}).Error
}

func (r *BlockRepositoryImpl) GetAllForDocument(ctx context.Context, documentId uuid.UUID) ([]*entity.Block, error) {
	var all []*entity.Block
	for _, binding := range r.registry.Bindings() {
		blocks, err := r.GetAllByDocument(ctx, documentId, binding.Type)
		if err != nil {
			return nil, fmt.Errorf("fan-out query on %s: %w", binding.Table, err)
		}
		all = append(all, blocks...)
	}
	return all, nil
}

func (r *BlockRepositoryImpl) DeleteAllForDocument(ctx context.Context, documentId uuid.UUID) (int64, error) {
	var deleted int64
	for _, binding := range r.registry.Bindings() {
		res := r.db.WithContext(ctx).Table(binding.Table).
			Where("document_id = ?", documentId).
			Delete(&model.BlockRow{})
		deleted += res.RowsAffected
		if res.Error != nil {
			// Best-effort cascade: completed deletes stay, the failure is
			// surfaced to the caller.
			return deleted, fmt.Errorf("fan-out delete on %s: %w", binding.Table, res.Error)
		}
	}
	return deleted, nil
}
