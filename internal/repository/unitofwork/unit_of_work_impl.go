package unitofwork

import (
	"context"
	"fmt"

	"nota-be/internal/registry"
	"nota-be/internal/repository/contract"
	"nota-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db       *gorm.DB
	tx       *gorm.DB // active transaction, nil outside Begin/Commit
	registry *registry.BlockTableRegistry
}

func NewUnitOfWork(db *gorm.DB, reg *registry.BlockTableRegistry) UnitOfWork {
	return &UnitOfWorkImpl{
		db:       db,
		registry: reg,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) DocumentRepository() contract.DocumentRepository {
	return implementation.NewDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BlockRepository() contract.BlockRepository {
	return implementation.NewBlockRepository(u.getDB(), u.registry)
}

func (u *UnitOfWorkImpl) BlockStructureRepository() contract.BlockStructureRepository {
	return implementation.NewBlockStructureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FavoriteBlockRepository() contract.FavoriteBlockRepository {
	return implementation.NewFavoriteBlockRepository(u.getDB())
}
