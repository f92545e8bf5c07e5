package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"nota-be/internal/apperror"
	"nota-be/internal/dto"
	"nota-be/internal/entity"
	"nota-be/internal/pkg/logger"
	"nota-be/internal/registry"
	"nota-be/internal/repository/memory"
	"nota-be/internal/repository/unitofwork"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

// SyncState is the per-document synchronization state.
type SyncState string

const (
	SyncStateUnloaded   SyncState = "unloaded"
	SyncStateLoading    SyncState = "loading"
	SyncStateClean      SyncState = "clean"
	SyncStateDirty      SyncState = "dirty"
	SyncStatePersisting SyncState = "persisting"
)

type ISyncService interface {
	// Flatten converts a tree into an ordered structure plus per-type block
	// rows, assigning fresh ids only to nodes that carry none. Unknown types
	// and duplicated node ids fail before anything is written.
	Flatten(documentId uuid.UUID, tree *blocktree.Tree) ([]entity.BlockRef, []*entity.Block, error)

	// Reconstruct rebuilds the tree from structure + block rows, skipping
	// stale references instead of failing.
	Reconstruct(ctx context.Context, documentId uuid.UUID) (*blocktree.Tree, error)

	// Persist flattens and writes blocks first, structure second, so an
	// interrupted write can only leave the structure referencing blocks that
	// exist. An empty tree writes an empty structure and deletes nothing.
	Persist(ctx context.Context, documentId uuid.UUID, tree *blocktree.Tree) error

	// MarkDirty records an editor mutation; a mutation arriving during an
	// in-flight persist is picked up by the next cycle, not lost.
	MarkDirty(documentId uuid.UUID)

	State(documentId uuid.UUID) SyncState
}

// docSyncState serializes one document's sync cycles. cycleMu is held across
// a whole persist or reconstruct; stateMu only guards the two fields.
type docSyncState struct {
	cycleMu sync.Mutex

	stateMu sync.Mutex
	state   SyncState
	dirty   bool
}

func (d *docSyncState) get() SyncState {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.state
}

func (d *docSyncState) set(s SyncState) {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.state = s
}

func (d *docSyncState) beginPersist() {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.state = SyncStatePersisting
	d.dirty = false
}

func (d *docSyncState) finishPersist(ok bool) {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	if !ok || d.dirty {
		d.state = SyncStateDirty
		return
	}
	d.state = SyncStateClean
}

func (d *docSyncState) markDirty() {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	if d.state == SyncStatePersisting {
		d.dirty = true
		return
	}
	d.state = SyncStateDirty
}

type syncService struct {
	uowFactory       unitofwork.RepositoryFactory
	registry         *registry.BlockTableRegistry
	treeCache        *memory.TreeCache
	publisherService IPublisherService
	logger           logger.ILogger

	states sync.Map // uuid.UUID -> *docSyncState
}

func NewSyncService(
	uowFactory unitofwork.RepositoryFactory,
	reg *registry.BlockTableRegistry,
	treeCache *memory.TreeCache,
	publisherService IPublisherService,
	log logger.ILogger,
) ISyncService {
	return &syncService{
		uowFactory:       uowFactory,
		registry:         reg,
		treeCache:        treeCache,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *syncService) stateFor(documentId uuid.UUID) *docSyncState {
	v, _ := s.states.LoadOrStore(documentId, &docSyncState{state: SyncStateUnloaded})
	return v.(*docSyncState)
}

func (s *syncService) State(documentId uuid.UUID) SyncState {
	return s.stateFor(documentId).get()
}

func (s *syncService) MarkDirty(documentId uuid.UUID) {
	s.stateFor(documentId).markDirty()
}

func (s *syncService) Flatten(documentId uuid.UUID, tree *blocktree.Tree) ([]entity.BlockRef, []*entity.Block, error) {
	refs := make([]entity.BlockRef, 0)
	blocks := make([]*entity.Block, 0)
	if tree == nil {
		return refs, blocks, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(tree.Nodes))
	for i := range tree.Nodes {
		node := &tree.Nodes[i]
		if _, err := s.registry.ResolveTable(node.Type); err != nil {
			return nil, nil, err
		}
		// Reuse ids round-tripped from an earlier flatten so identity
		// survives saves; only brand-new nodes get fresh ids.
		if node.Id == uuid.Nil {
			node.Id = uuid.New()
		}
		// A block id may appear once per structure; a duplicated id would
		// silently collapse two nodes into one row.
		if _, dup := seen[node.Id]; dup {
			return nil, nil, apperror.ValidationFailed("tree", "duplicate block id "+node.Id.String())
		}
		seen[node.Id] = struct{}{}

		blocks = append(blocks, &entity.Block{
			Id:         node.Id,
			Type:       node.Type,
			DocumentId: documentId,
			Payload:    node.Payload,
		})
		refs = append(refs, entity.BlockRef{
			BlockId:   node.Id,
			BlockType: node.Type,
		})
	}

	return refs, blocks, nil
}

func (s *syncService) Reconstruct(ctx context.Context, documentId uuid.UUID) (*blocktree.Tree, error) {
	st := s.stateFor(documentId)
	st.cycleMu.Lock()
	defer st.cycleMu.Unlock()

	wasUnloaded := st.get() == SyncStateUnloaded

	if cached, ok := s.treeCache.Get(documentId); ok {
		if wasUnloaded {
			st.set(SyncStateClean)
		}
		return cached, nil
	}

	if wasUnloaded {
		st.set(SyncStateLoading)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.BlockStructureRepository().GetEntries(ctx, documentId)
	if err != nil {
		if wasUnloaded {
			st.set(SyncStateUnloaded)
		}
		return nil, err
	}

	tree := &blocktree.Tree{Nodes: make([]blocktree.Node, 0, len(entries))}
	for _, ref := range entries {
		block, err := uow.BlockRepository().Get(ctx, ref.BlockId, ref.BlockType)
		if err != nil {
			if errors.Is(err, apperror.ErrUnknownBlockType) {
				// A structure entry with a tag no longer registered behaves
				// like a stale reference: degrade by omission.
				s.logger.Warn("sync", "skipping structure entry with unknown block type", map[string]interface{}{
					"document_id": documentId.String(),
					"block_id":    ref.BlockId.String(),
					"block_type":  string(ref.BlockType),
				})
				continue
			}
			if wasUnloaded {
				st.set(SyncStateUnloaded)
			}
			return nil, err
		}
		if block == nil {
			s.logger.Warn("sync", "skipping stale structure reference", map[string]interface{}{
				"document_id": documentId.String(),
				"block_id":    ref.BlockId.String(),
				"block_type":  string(ref.BlockType),
			})
			continue
		}
		tree.Nodes = append(tree.Nodes, blocktree.Node{
			Id:      block.Id,
			Type:    block.Type,
			Payload: block.Payload,
		})
	}

	s.treeCache.Put(documentId, tree)
	if wasUnloaded || st.get() == SyncStateLoading {
		st.set(SyncStateClean)
	}
	return tree, nil
}

func (s *syncService) Persist(ctx context.Context, documentId uuid.UUID, tree *blocktree.Tree) error {
	st := s.stateFor(documentId)
	st.cycleMu.Lock()
	defer st.cycleMu.Unlock()

	// Flatten before touching state so an unknown type never leaves the
	// document looking persisted.
	refs, blocks, err := s.Flatten(documentId, tree)
	if err != nil {
		return err
	}

	st.beginPersist()
	ok := false
	defer func() { st.finishPersist(ok) }()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Blocks before structure: an interruption here leaves orphan rows, never
	// dangling references.
	for _, block := range blocks {
		if _, err := uow.BlockRepository().Save(ctx, block); err != nil {
			return err
		}
	}

	if err := uow.BlockStructureRepository().SetEntries(ctx, documentId, refs); err != nil {
		return err
	}

	s.treeCache.Invalidate(documentId)
	ok = true

	if s.publisherService != nil {
		msg, err := json.Marshal(dto.DocumentPersistedMessage{DocumentId: documentId})
		if err == nil {
			err = s.publisherService.Publish(ctx, msg)
		}
		if err != nil {
			// Autosave is auxiliary; the persist itself succeeded.
			s.logger.Warn("sync", "failed to publish document persisted message", map[string]interface{}{
				"document_id": documentId.String(),
				"error":       err.Error(),
			})
		}
	}

	return nil
}
