package service

import (
	"context"
	"time"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/entity"
	"nota-be/internal/pkg/logger"
	"nota-be/internal/repository/memory"
	"nota-be/internal/repository/specification"
	"nota-be/internal/repository/unitofwork"
	"nota-be/pkg/events"
	pktNats "nota-be/pkg/nats"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Create(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error)
	Move(ctx context.Context, req *dto.MoveDocumentRequest) (*dto.MoveDocumentResponse, error)
	List(ctx context.Context, req *dto.ListDocumentsRequest) ([]*dto.DocumentListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	uowFactory     unitofwork.RepositoryFactory
	treeCache      *memory.TreeCache
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	treeCache *memory.TreeCache,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:     uowFactory,
		treeCache:      treeCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (c *documentService) Create(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.ParentId != nil {
		parent, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.DocumentNotFound(req.ParentId.String())
		}
	}

	doc := entity.Document{
		Id:        uuid.New(),
		Title:     req.Title,
		ParentId:  req.ParentId,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, "DOCUMENT_CREATED", map[string]interface{}{
		"document_id": doc.Id,
		"title":       doc.Title,
	})

	return &dto.CreateDocumentResponse{
		Id: doc.Id,
	}, nil
}

func (c *documentService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.DocumentNotFound(id.String())
	}

	breadcrumb, err := c.buildBreadcrumb(ctx, uow, doc.ParentId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowDocumentResponse{
		Id:         doc.Id,
		Title:      doc.Title,
		ParentId:   doc.ParentId,
		Tags:       doc.Tags,
		IsFavorite: doc.IsFavorite,
		Breadcrumb: breadcrumb,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}

// buildBreadcrumb walks the parent_id chain up to the root so the frontend can
// render ancestry and auto-expand the sidebar tree.
func (c *documentService) buildBreadcrumb(ctx context.Context, uow unitofwork.UnitOfWork, parentId *uuid.UUID) ([]dto.BreadcrumbItem, error) {
	breadcrumb := make([]dto.BreadcrumbItem, 0)
	currentId := parentId

	for currentId != nil {
		parent, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: *currentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			break // orphaned reference
		}

		// Prepend to build root-first order
		breadcrumb = append([]dto.BreadcrumbItem{{
			Id:    parent.Id,
			Title: parent.Title,
		}}, breadcrumb...)

		currentId = parent.ParentId
	}

	return breadcrumb, nil
}

func (c *documentService) Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.DocumentNotFound(req.Id.String())
	}

	now := time.Now()
	doc.Title = req.Title
	doc.Tags = req.Tags
	doc.IsFavorite = req.IsFavorite
	doc.UpdatedAt = &now

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.UpdateDocumentResponse{
		Id: doc.Id,
	}, nil
}

func (c *documentService) Move(ctx context.Context, req *dto.MoveDocumentRequest) (*dto.MoveDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.DocumentNotFound(req.Id.String())
	}

	if req.ParentId != nil {
		if *req.ParentId == doc.Id {
			return nil, apperror.ValidationFailed("parent_id", "a document cannot be its own parent")
		}
		parent, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.DocumentNotFound(req.ParentId.String())
		}
		// Reject moving under one of the document's own descendants.
		currentId := parent.ParentId
		for currentId != nil {
			if *currentId == doc.Id {
				return nil, apperror.ValidationFailed("parent_id", "cannot move a document under its own descendant")
			}
			ancestor, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: *currentId})
			if err != nil {
				return nil, err
			}
			if ancestor == nil {
				break
			}
			currentId = ancestor.ParentId
		}
	}

	now := time.Now()
	doc.ParentId = req.ParentId
	doc.UpdatedAt = &now

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.MoveDocumentResponse{
		Id: doc.Id,
	}, nil
}

func (c *documentService) List(ctx context.Context, req *dto.ListDocumentsRequest) ([]*dto.DocumentListItem, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if req.ParentId != nil {
		specs = append(specs, specification.ByParentID{ParentID: *req.ParentId})
	}
	if req.Tag != "" {
		specs = append(specs, specification.ByTag{Tag: req.Tag})
	}
	if req.FavoritesOnly {
		specs = append(specs, specification.FavoritesOnly{})
	}
	if req.ParentId == nil && req.Tag == "" && !req.FavoritesOnly {
		specs = append(specs, specification.RootDocuments{})
	}

	docs, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.DocumentListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, &dto.DocumentListItem{
			Id:         doc.Id,
			Title:      doc.Title,
			ParentId:   doc.ParentId,
			Tags:       doc.Tags,
			IsFavorite: doc.IsFavorite,
			UpdatedAt:  doc.UpdatedAt,
		})
	}
	return items, nil
}

func (c *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return nil // idempotent
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.BlockStructureRepository().Delete(ctx, id); err != nil {
		return err
	}

	deleted, err := uow.BlockRepository().DeleteAllForDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.treeCache.Invalidate(id)

	c.logger.Info("document", "document deleted with its blocks", map[string]interface{}{
		"document_id":    id.String(),
		"blocks_deleted": deleted,
	})

	c.publishEvent(ctx, "DOCUMENT_DELETED", map[string]interface{}{
		"document_id": id,
		"title":       doc.Title,
	})

	return nil
}

// publishEvent emits a domain event on the NATS bus. Events are auxiliary;
// failures are logged and never fail the request.
func (c *documentService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.logger.Warn("document", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
