package unitofwork

import (
	"context"

	"nota-be/internal/registry"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db       *gorm.DB
	registry *registry.BlockTableRegistry
}

func NewRepositoryFactory(db *gorm.DB, reg *registry.BlockTableRegistry) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:       db,
		registry: reg,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the context is used by Begin() or
	// passed explicitly to repository calls.
	return NewUnitOfWork(f.db, f.registry)
}
