package service

import (
	"context"
	"testing"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newDocumentServiceForTest(store *fakeStore) IDocumentService {
	return NewDocumentService(
		&fakeRepositoryFactory{store: store},
		memory.NewTreeCache(),
		nil, // events degrade to local-only without NATS
		&fakeLogger{},
	)
}

func TestCreateAndShowDocument(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateDocumentRequest{
		Title: "Research Notes",
		Tags:  []string{"phd"},
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)

	shown, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Research Notes", shown.Title)
	assert.Equal(t, []string{"phd"}, shown.Tags)
	assert.Empty(t, shown.Breadcrumb)
}

func TestShowUnknownDocument(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrDocumentNotFound)
}

func TestCreateUnderMissingParent(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	missing := uuid.New()

	_, err := svc.Create(context.Background(), &dto.CreateDocumentRequest{
		Title:    "orphan",
		ParentId: &missing,
	})
	assert.ErrorIs(t, err, apperror.ErrDocumentNotFound)
}

func TestBreadcrumbWalksToRoot(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	ctx := context.Background()

	root, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "Thesis"})
	assert.NoError(t, err)
	chapter, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "Chapter 1", ParentId: &root.Id})
	assert.NoError(t, err)
	section, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "Methods", ParentId: &chapter.Id})
	assert.NoError(t, err)

	shown, err := svc.Show(ctx, section.Id)
	assert.NoError(t, err)
	if assert.Len(t, shown.Breadcrumb, 2) {
		assert.Equal(t, "Thesis", shown.Breadcrumb[0].Title)
		assert.Equal(t, "Chapter 1", shown.Breadcrumb[1].Title)
	}
}

func TestMoveRejectsSelfAndDescendants(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	ctx := context.Background()

	parent, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "parent"})
	assert.NoError(t, err)
	child, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "child", ParentId: &parent.Id})
	assert.NoError(t, err)

	_, err = svc.Move(ctx, &dto.MoveDocumentRequest{Id: parent.Id, ParentId: &parent.Id})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Move(ctx, &dto.MoveDocumentRequest{Id: parent.Id, ParentId: &child.Id})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestMoveToTopLevel(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	ctx := context.Background()

	parent, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "parent"})
	assert.NoError(t, err)
	child, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "child", ParentId: &parent.Id})
	assert.NoError(t, err)

	_, err = svc.Move(ctx, &dto.MoveDocumentRequest{Id: child.Id, ParentId: nil})
	assert.NoError(t, err)

	shown, err := svc.Show(ctx, child.Id)
	assert.NoError(t, err)
	assert.Nil(t, shown.ParentId)
}

func TestListFiltering(t *testing.T) {
	store := newFakeStore()
	svc := newDocumentServiceForTest(store)
	ctx := context.Background()

	root, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "root", Tags: []string{"work"}})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateDocumentRequest{Title: "nested", ParentId: &root.Id})
	assert.NoError(t, err)

	roots, err := svc.List(ctx, &dto.ListDocumentsRequest{})
	assert.NoError(t, err)
	assert.Len(t, roots, 1)
	assert.Equal(t, "root", roots[0].Title)

	children, err := svc.List(ctx, &dto.ListDocumentsRequest{ParentId: &root.Id})
	assert.NoError(t, err)
	assert.Len(t, children, 1)
	assert.Equal(t, "nested", children[0].Title)

	tagged, err := svc.List(ctx, &dto.ListDocumentsRequest{Tag: "work"})
	assert.NoError(t, err)
	assert.Len(t, tagged, 1)
}

func TestDeleteCascadesBlocksAndStructure(t *testing.T) {
	store := newFakeStore()
	docSvc := newDocumentServiceForTest(store)
	syncSvc, _, _ := newSyncServiceForTest(store)
	ctx := context.Background()

	created, err := docSvc.Create(ctx, &dto.CreateDocumentRequest{Title: "doomed"})
	assert.NoError(t, err)

	assert.NoError(t, syncSvc.Persist(ctx, created.Id, sampleTree()))
	assert.Equal(t, 3, store.blockCount())

	assert.NoError(t, docSvc.Delete(ctx, created.Id))

	assert.Equal(t, 0, store.blockCount())
	assert.Empty(t, store.structures[created.Id])
	assert.NotContains(t, store.documents, created.Id)

	// Deleting again is a no-op.
	assert.NoError(t, docSvc.Delete(ctx, created.Id))
}
