package service

import (
	"context"
	"time"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/entity"
	"nota-be/internal/repository/specification"
	"nota-be/internal/repository/unitofwork"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

type IFavoriteBlockService interface {
	// CreateFromBlock snapshots a live block's payload into the favorites
	// collection. The copy is independent: later edits to the source block do
	// not touch it.
	CreateFromBlock(ctx context.Context, req *dto.CreateFavoriteBlockRequest) (*dto.FavoriteBlockResponse, error)
	List(ctx context.Context, category string) ([]*dto.FavoriteBlockResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type favoriteBlockService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFavoriteBlockService(uowFactory unitofwork.RepositoryFactory) IFavoriteBlockService {
	return &favoriteBlockService{
		uowFactory: uowFactory,
	}
}

func (c *favoriteBlockService) CreateFromBlock(ctx context.Context, req *dto.CreateFavoriteBlockRequest) (*dto.FavoriteBlockResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	tag := blocktree.BlockType(req.BlockType)
	block, err := uow.BlockRepository().Get(ctx, req.BlockId, tag)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, apperror.NotFound("block", req.BlockId.String())
	}

	fav := entity.FavoriteBlock{
		Id:        uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		Type:      block.Type,
		Payload:   block.Payload.Clone(),
		CreatedAt: time.Now(),
	}

	if err := uow.FavoriteBlockRepository().Save(ctx, &fav); err != nil {
		return nil, err
	}

	return toFavoriteBlockResponse(&fav)
}

func (c *favoriteBlockService) List(ctx context.Context, category string) ([]*dto.FavoriteBlockResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	favs, err := uow.FavoriteBlockRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.FavoriteBlockResponse, 0, len(favs))
	for _, fav := range favs {
		resp, err := toFavoriteBlockResponse(fav)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (c *favoriteBlockService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.FavoriteBlockRepository().Delete(ctx, id)
}

func toFavoriteBlockResponse(fav *entity.FavoriteBlock) (*dto.FavoriteBlockResponse, error) {
	payload, err := blocktree.EncodePayload(fav.Payload)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteBlockResponse{
		Id:        fav.Id,
		Name:      fav.Name,
		Category:  fav.Category,
		BlockType: string(fav.Type),
		Payload:   payload,
		CreatedAt: fav.CreatedAt,
	}, nil
}
