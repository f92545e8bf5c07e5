package implementation

import (
	"context"
	"errors"
	"time"

	"nota-be/internal/entity"
	"nota-be/internal/mapper"
	"nota-be/internal/model"
	"nota-be/internal/repository/contract"
	"nota-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteBlockRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FavoriteBlockMapper
}

func NewFavoriteBlockRepository(db *gorm.DB) contract.FavoriteBlockRepository {
	return &FavoriteBlockRepositoryImpl{
		db:     db,
		mapper: mapper.NewFavoriteBlockMapper(),
	}
}

func (r *FavoriteBlockRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FavoriteBlockRepositoryImpl) Save(ctx context.Context, fav *entity.FavoriteBlock) error {
	if fav.Id == uuid.Nil {
		fav.Id = uuid.New()
	}
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = time.Now()
	}

	m, err := r.mapper.ToModel(fav)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "payload"}),
		}).
		Create(m).Error
}

func (r *FavoriteBlockRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FavoriteBlock, error) {
	var m model.FavoriteBlock
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *FavoriteBlockRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FavoriteBlock, error) {
	var models []*model.FavoriteBlock
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *FavoriteBlockRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FavoriteBlock{}, id).Error
}
