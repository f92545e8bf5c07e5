package service

import (
	"context"
	"sync"
	"time"

	"nota-be/internal/apperror"
	"nota-be/internal/entity"
	"nota-be/internal/repository/contract"
	"nota-be/internal/repository/specification"
	"nota-be/internal/repository/unitofwork"
	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
)

// fakeStore is shared in-memory backing state for the fake repositories. The
// opLog records write operations in order so tests can assert write ordering.
type fakeStore struct {
	mu sync.Mutex

	documents  map[uuid.UUID]*entity.Document
	blocks     map[blocktree.BlockType]map[uuid.UUID]*entity.Block
	structures map[uuid.UUID][]entity.BlockRef
	versions   map[uuid.UUID]int64
	favorites  map[uuid.UUID]*entity.FavoriteBlock

	opLog []string

	failBlockSave    error
	failStructureSet error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		documents:  make(map[uuid.UUID]*entity.Document),
		blocks:     make(map[blocktree.BlockType]map[uuid.UUID]*entity.Block),
		structures: make(map[uuid.UUID][]entity.BlockRef),
		versions:   make(map[uuid.UUID]int64),
		favorites:  make(map[uuid.UUID]*entity.FavoriteBlock),
	}
}

func (s *fakeStore) putBlock(block *entity.Block) {
	if s.blocks[block.Type] == nil {
		s.blocks[block.Type] = make(map[uuid.UUID]*entity.Block)
	}
	copied := *block
	copied.Payload = block.Payload.Clone()
	s.blocks[block.Type][block.Id] = &copied
}

func (s *fakeStore) blockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, byId := range s.blocks {
		n += len(byId)
	}
	return n
}

func errUnknownTypeFor(tag blocktree.BlockType) error {
	return apperror.UnknownBlockType(string(tag))
}

// --- fake repositories ---

type fakeBlockRepository struct {
	store *fakeStore
}

func (r *fakeBlockRepository) Save(ctx context.Context, block *entity.Block) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failBlockSave != nil {
		return uuid.Nil, r.store.failBlockSave
	}
	if !blocktree.IsKnownType(block.Type) {
		return uuid.Nil, errUnknownTypeFor(block.Type)
	}

	now := time.Now()
	if block.Id == uuid.Nil {
		block.Id = uuid.New()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = now
	}
	block.UpdatedAt = &now

	r.store.putBlock(block)
	r.store.opLog = append(r.store.opLog, "save-block")
	return block.Id, nil
}

func (r *fakeBlockRepository) Get(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) (*entity.Block, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !blocktree.IsKnownType(tag) {
		return nil, errUnknownTypeFor(tag)
	}
	block, ok := r.store.blocks[tag][id]
	if !ok {
		return nil, nil
	}
	copied := *block
	copied.Payload = block.Payload.Clone()
	return &copied, nil
}

func (r *fakeBlockRepository) GetAllByDocument(ctx context.Context, documentId uuid.UUID, tag blocktree.BlockType) ([]*entity.Block, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !blocktree.IsKnownType(tag) {
		return nil, errUnknownTypeFor(tag)
	}
	var out []*entity.Block
	for _, block := range r.store.blocks[tag] {
		if block.DocumentId == documentId {
			copied := *block
			copied.Payload = block.Payload.Clone()
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBlockRepository) Delete(ctx context.Context, id uuid.UUID, tag blocktree.BlockType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !blocktree.IsKnownType(tag) {
		return errUnknownTypeFor(tag)
	}
	delete(r.store.blocks[tag], id)
	return nil
}

func (r *fakeBlockRepository) GetAllForDocument(ctx context.Context, documentId uuid.UUID) ([]*entity.Block, error) {
	var all []*entity.Block
	for _, tag := range blocktree.KnownTypes() {
		blocks, err := r.GetAllByDocument(ctx, documentId, tag)
		if err != nil {
			return nil, err
		}
		all = append(all, blocks...)
	}
	return all, nil
}

func (r *fakeBlockRepository) DeleteAllForDocument(ctx context.Context, documentId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for _, byId := range r.store.blocks {
		for id, block := range byId {
			if block.DocumentId == documentId {
				delete(byId, id)
				deleted++
			}
		}
	}
	return deleted, nil
}

type fakeBlockStructureRepository struct {
	store *fakeStore
}

func (r *fakeBlockStructureRepository) Get(ctx context.Context, documentId uuid.UUID) (*entity.BlockStructure, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entries, ok := r.store.structures[documentId]
	if !ok {
		return nil, nil
	}
	return &entity.BlockStructure{
		DocumentId: documentId,
		Entries:    append([]entity.BlockRef(nil), entries...),
		Version:    r.store.versions[documentId],
	}, nil
}

func (r *fakeBlockStructureRepository) GetEntries(ctx context.Context, documentId uuid.UUID) ([]entity.BlockRef, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entries := r.store.structures[documentId]
	return append([]entity.BlockRef(nil), entries...), nil
}

func (r *fakeBlockStructureRepository) SetEntries(ctx context.Context, documentId uuid.UUID, entries []entity.BlockRef) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failStructureSet != nil {
		return r.store.failStructureSet
	}
	r.store.structures[documentId] = append([]entity.BlockRef(nil), entries...)
	r.store.versions[documentId]++
	r.store.opLog = append(r.store.opLog, "set-entries")
	return nil
}

func (r *fakeBlockStructureRepository) Delete(ctx context.Context, documentId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.structures, documentId)
	delete(r.store.versions, documentId)
	return nil
}

type fakeDocumentRepository struct {
	store *fakeStore
}

func (r *fakeDocumentRepository) Create(ctx context.Context, doc *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *doc
	r.store.documents[doc.Id] = &copied
	return nil
}

func (r *fakeDocumentRepository) Update(ctx context.Context, doc *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *doc
	r.store.documents[doc.Id] = &copied
	return nil
}

func (r *fakeDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.documents, id)
	return nil
}

func (r *fakeDocumentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			doc, found := r.store.documents[byId.ID]
			if !found {
				return nil, nil
			}
			copied := *doc
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Document
	for _, doc := range r.store.documents {
		if matchesDocumentSpecs(doc, specs) {
			copied := *doc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func matchesDocumentSpecs(doc *entity.Document, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByParentID:
			if doc.ParentId == nil || *doc.ParentId != s.ParentID {
				return false
			}
		case specification.RootDocuments:
			if doc.ParentId != nil {
				return false
			}
		case specification.FavoritesOnly:
			if !doc.IsFavorite {
				return false
			}
		case specification.ByTag:
			found := false
			for _, tag := range doc.Tags {
				if tag == s.Tag {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *fakeDocumentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	docs, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

type fakeFavoriteBlockRepository struct {
	store *fakeStore
}

func (r *fakeFavoriteBlockRepository) Save(ctx context.Context, fav *entity.FavoriteBlock) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *fav
	copied.Payload = fav.Payload.Clone()
	r.store.favorites[fav.Id] = &copied
	return nil
}

func (r *fakeFavoriteBlockRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FavoriteBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			fav, found := r.store.favorites[byId.ID]
			if !found {
				return nil, nil
			}
			copied := *fav
			copied.Payload = fav.Payload.Clone()
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeFavoriteBlockRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FavoriteBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var category string
	for _, spec := range specs {
		if byCat, ok := spec.(specification.ByCategory); ok {
			category = byCat.Category
		}
	}

	var out []*entity.FavoriteBlock
	for _, fav := range r.store.favorites {
		if category != "" && fav.Category != category {
			continue
		}
		copied := *fav
		copied.Payload = fav.Payload.Clone()
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeFavoriteBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.favorites, id)
	return nil
}

// --- fake unit of work ---

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepository{store: u.store}
}

func (u *fakeUnitOfWork) BlockRepository() contract.BlockRepository {
	return &fakeBlockRepository{store: u.store}
}

func (u *fakeUnitOfWork) BlockStructureRepository() contract.BlockStructureRepository {
	return &fakeBlockStructureRepository{store: u.store}
}

func (u *fakeUnitOfWork) FavoriteBlockRepository() contract.FavoriteBlockRepository {
	return &fakeFavoriteBlockRepository{store: u.store}
}

type fakeRepositoryFactory struct {
	store *fakeStore
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- fake collaborators ---

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	failWith error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failWith != nil {
		return p.failWith
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

type fakeLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *fakeLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Info(module, message string, details map[string]interface{})  {}
func (l *fakeLogger) Error(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Sync() error                                                  { return nil }

func (l *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, message)
}

func (l *fakeLogger) warnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns)
}
