package unitofwork

import (
	"context"

	"nota-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	BlockRepository() contract.BlockRepository
	BlockStructureRepository() contract.BlockStructureRepository
	FavoriteBlockRepository() contract.FavoriteBlockRepository
}
