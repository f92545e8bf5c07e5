package service

import (
	"context"
	"encoding/json"
	"testing"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/repository/memory"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBlockServiceForTest(store *fakeStore) (IBlockService, ISyncService) {
	syncSvc, _, _ := newSyncServiceForTest(store)
	blockSvc := NewBlockService(&fakeRepositoryFactory{store: store}, memory.NewTreeCache(), syncSvc)
	return blockSvc, syncSvc
}

func TestSaveBlockInsertsWithFreshId(t *testing.T) {
	store := newFakeStore()
	blockSvc, syncSvc := newBlockServiceForTest(store)
	ctx := context.Background()
	documentId := uuid.New()

	res, err := blockSvc.Save(ctx, &dto.SaveBlockRequest{
		Type:       "text",
		DocumentId: documentId,
		Payload:    json.RawMessage(`{"text":"typed by hand"}`),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.NotNil(t, res.UpdatedAt)

	// A partial save without a structure rewrite leaves the document dirty.
	assert.Equal(t, SyncStateDirty, syncSvc.State(documentId))
}

func TestSaveBlockUpdatesInPlace(t *testing.T) {
	store := newFakeStore()
	blockSvc, _ := newBlockServiceForTest(store)
	ctx := context.Background()
	documentId := uuid.New()

	first, err := blockSvc.Save(ctx, &dto.SaveBlockRequest{
		Type:       "aiGeneration",
		DocumentId: documentId,
		Payload:    json.RawMessage(`{"prompt":"summarize","loading":true}`),
	})
	assert.NoError(t, err)

	// The assistant streams updates into the same block id.
	second, err := blockSvc.Save(ctx, &dto.SaveBlockRequest{
		Id:         &first.Id,
		Type:       "aiGeneration",
		DocumentId: documentId,
		Payload:    json.RawMessage(`{"prompt":"summarize","result":"done","loading":false}`),
	})
	assert.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	shown, err := blockSvc.Get(ctx, first.Id, blocktree.TypeAIGeneration)
	assert.NoError(t, err)

	var payload blocktree.AIGenerationPayload
	assert.NoError(t, json.Unmarshal(shown.Payload, &payload))
	assert.Equal(t, "done", payload.Result)
	assert.False(t, payload.Loading)
}

func TestSaveBlockUnknownType(t *testing.T) {
	store := newFakeStore()
	blockSvc, _ := newBlockServiceForTest(store)

	_, err := blockSvc.Save(context.Background(), &dto.SaveBlockRequest{
		Type:       "hologram",
		DocumentId: uuid.New(),
		Payload:    json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, apperror.ErrUnknownBlockType)
	assert.Equal(t, 0, store.blockCount())
}

func TestGetMissingBlock(t *testing.T) {
	store := newFakeStore()
	blockSvc, _ := newBlockServiceForTest(store)

	_, err := blockSvc.Get(context.Background(), uuid.New(), blocktree.TypeText)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteBlockIsIdempotent(t *testing.T) {
	store := newFakeStore()
	blockSvc, syncSvc := newBlockServiceForTest(store)
	ctx := context.Background()
	documentId := uuid.New()

	res, err := blockSvc.Save(ctx, &dto.SaveBlockRequest{
		Type:       "text",
		DocumentId: documentId,
		Payload:    json.RawMessage(`{"text":"soon gone"}`),
	})
	assert.NoError(t, err)

	assert.NoError(t, blockSvc.Delete(ctx, res.Id, blocktree.TypeText, documentId))
	assert.Equal(t, 0, store.blockCount())
	assert.Equal(t, SyncStateDirty, syncSvc.State(documentId))

	assert.NoError(t, blockSvc.Delete(ctx, res.Id, blocktree.TypeText, documentId))
}
