package service

import (
	"context"
	"time"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/entity"
	"nota-be/internal/repository/specification"
	"nota-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// AutosaveVersionName marks the rolling snapshot maintained by the autosave
// consumer; it is replaced in place instead of accumulating.
const AutosaveVersionName = "autosave"

type IVersionService interface {
	Snapshot(ctx context.Context, documentId uuid.UUID, name string) (*dto.VersionResponse, error)
	Autosave(ctx context.Context, documentId uuid.UUID) error
	ListVersions(ctx context.Context, documentId uuid.UUID) ([]*dto.VersionResponse, error)
	Restore(ctx context.Context, documentId uuid.UUID, versionId uuid.UUID) error
	DeleteVersion(ctx context.Context, documentId uuid.UUID, versionId uuid.UUID) error
}

type versionService struct {
	uowFactory  unitofwork.RepositoryFactory
	syncService ISyncService
}

func NewVersionService(uowFactory unitofwork.RepositoryFactory, syncService ISyncService) IVersionService {
	return &versionService{
		uowFactory:  uowFactory,
		syncService: syncService,
	}
}

func (c *versionService) Snapshot(ctx context.Context, documentId uuid.UUID, name string) (*dto.VersionResponse, error) {
	snap, err := c.takeSnapshot(ctx, documentId, name, false)
	if err != nil {
		return nil, err
	}
	return &dto.VersionResponse{
		Id:        snap.Id,
		Name:      snap.Name,
		CreatedAt: snap.CreatedAt,
	}, nil
}

func (c *versionService) Autosave(ctx context.Context, documentId uuid.UUID) error {
	_, err := c.takeSnapshot(ctx, documentId, AutosaveVersionName, true)
	return err
}

// takeSnapshot reconstructs the current tree, deep-copies it and appends a
// named entry to the document's version list. With replaceByName, an existing
// entry of the same name is dropped first.
func (c *versionService) takeSnapshot(ctx context.Context, documentId uuid.UUID, name string, replaceByName bool) (*entity.VersionSnapshot, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.DocumentNotFound(documentId.String())
	}

	tree, err := c.syncService.Reconstruct(ctx, documentId)
	if err != nil {
		return nil, err
	}

	snap := entity.VersionSnapshot{
		Id:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		Tree:      tree.Clone(),
	}

	versions := doc.Versions
	if replaceByName {
		kept := versions[:0]
		for _, v := range versions {
			if v.Name != name {
				kept = append(kept, v)
			}
		}
		versions = kept
	}
	doc.Versions = append(versions, snap)

	now := time.Now()
	doc.UpdatedAt = &now
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return &snap, nil
}

func (c *versionService) ListVersions(ctx context.Context, documentId uuid.UUID) ([]*dto.VersionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.DocumentNotFound(documentId.String())
	}

	// Stored oldest first; returned most recent first.
	out := make([]*dto.VersionResponse, 0, len(doc.Versions))
	for i := len(doc.Versions) - 1; i >= 0; i-- {
		v := doc.Versions[i]
		out = append(out, &dto.VersionResponse{
			Id:        v.Id,
			Name:      v.Name,
			CreatedAt: v.CreatedAt,
		})
	}
	return out, nil
}

func (c *versionService) Restore(ctx context.Context, documentId uuid.UUID, versionId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.DocumentNotFound(documentId.String())
	}

	var snap *entity.VersionSnapshot
	for i := range doc.Versions {
		if doc.Versions[i].Id == versionId {
			snap = &doc.Versions[i]
			break
		}
	}
	if snap == nil {
		return apperror.VersionNotFound(documentId.String(), versionId.String())
	}

	// Restore is not transactional: a failure here leaves the document in
	// whatever partial state the persist reached, surfaced as RestoreFailed.
	if err := c.syncService.Persist(ctx, documentId, snap.Tree.Clone()); err != nil {
		return apperror.RestoreFailed(documentId.String(), err)
	}
	return nil
}

func (c *versionService) DeleteVersion(ctx context.Context, documentId uuid.UUID, versionId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.DocumentNotFound(documentId.String())
	}

	kept := make([]entity.VersionSnapshot, 0, len(doc.Versions))
	for _, v := range doc.Versions {
		if v.Id != versionId {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(doc.Versions) {
		// Idempotent: removing an absent version is not an error.
		return nil
	}
	doc.Versions = kept

	now := time.Now()
	doc.UpdatedAt = &now
	return uow.DocumentRepository().Update(ctx, doc)
}
