package memory

import (
	"time"

	"nota-be/pkg/blocktree"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TreeCache keeps recently reconstructed trees so repeated loads of the same
// document skip the per-block fan-out. Entries are invalidated on every
// persist/restore/delete; the TTL only bounds memory for idle documents.
type TreeCache struct {
	cache *cache.Cache
}

func NewTreeCache() *TreeCache {
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &TreeCache{
		cache: c,
	}
}

func (r *TreeCache) Put(documentId uuid.UUID, tree *blocktree.Tree) {
	// Store a clone so later mutations of the live tree never leak in.
	r.cache.Set(documentId.String(), tree.Clone(), cache.DefaultExpiration)
}

func (r *TreeCache) Get(documentId uuid.UUID) (*blocktree.Tree, bool) {
	if x, found := r.cache.Get(documentId.String()); found {
		return x.(*blocktree.Tree).Clone(), true
	}
	return nil, false
}

func (r *TreeCache) Invalidate(documentId uuid.UUID) {
	r.cache.Delete(documentId.String())
}
