package contract

import (
	"context"

	"nota-be/internal/entity"
	"nota-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FavoriteBlockRepository interface {
	Save(ctx context.Context, fav *entity.FavoriteBlock) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FavoriteBlock, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FavoriteBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
