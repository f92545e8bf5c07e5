package service

import (
	"context"
	"errors"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/entity"
	"nota-be/internal/repository/memory"
	"nota-be/internal/repository/unitofwork"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

type IBlockService interface {
	// Save is the single-block fast path: upsert one block without rewriting
	// the document's structure. The ordered manifest is untouched, so the
	// document is marked dirty until the next full persist.
	Save(ctx context.Context, req *dto.SaveBlockRequest) (*dto.SaveBlockResponse, error)
	Get(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) (*dto.ShowBlockResponse, error)
	Delete(ctx context.Context, id uuid.UUID, tag blocktree.BlockType, documentId uuid.UUID) error
}

type blockService struct {
	uowFactory  unitofwork.RepositoryFactory
	treeCache   *memory.TreeCache
	syncService ISyncService
}

func NewBlockService(
	uowFactory unitofwork.RepositoryFactory,
	treeCache *memory.TreeCache,
	syncService ISyncService,
) IBlockService {
	return &blockService{
		uowFactory:  uowFactory,
		treeCache:   treeCache,
		syncService: syncService,
	}
}

func (c *blockService) Save(ctx context.Context, req *dto.SaveBlockRequest) (*dto.SaveBlockResponse, error) {
	tag := blocktree.BlockType(req.Type)
	payload, err := blocktree.DecodePayload(tag, req.Payload)
	if err != nil {
		if errors.Is(err, blocktree.ErrUnknownType) {
			return nil, apperror.UnknownBlockType(req.Type)
		}
		return nil, err
	}

	block := entity.Block{
		Type:       tag,
		DocumentId: req.DocumentId,
		Payload:    payload,
	}
	if req.Id != nil {
		block.Id = *req.Id
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	id, err := uow.BlockRepository().Save(ctx, &block)
	if err != nil {
		return nil, err
	}

	// The cached tree now holds a stale payload.
	c.treeCache.Invalidate(req.DocumentId)
	c.syncService.MarkDirty(req.DocumentId)

	return &dto.SaveBlockResponse{
		Id:        id,
		UpdatedAt: block.UpdatedAt,
	}, nil
}

func (c *blockService) Get(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) (*dto.ShowBlockResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	block, err := uow.BlockRepository().Get(ctx, id, tag)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, apperror.NotFound("block", id.String())
	}

	payload, err := blocktree.EncodePayload(block.Payload)
	if err != nil {
		return nil, err
	}

	return &dto.ShowBlockResponse{
		Id:         block.Id,
		Type:       string(block.Type),
		DocumentId: block.DocumentId,
		Payload:    payload,
		CreatedAt:  block.CreatedAt,
		UpdatedAt:  block.UpdatedAt,
	}, nil
}

func (c *blockService) Delete(ctx context.Context, id uuid.UUID, tag blocktree.BlockType, documentId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.BlockRepository().Delete(ctx, id, tag); err != nil {
		return err
	}

	// The structure may still reference the deleted block; reconstruction
	// tolerates that and skips the stale entry.
	c.treeCache.Invalidate(documentId)
	c.syncService.MarkDirty(documentId)
	return nil
}
