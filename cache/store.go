// Package cache provides WNID-based caching of synset lookups.  The
// cache wraps some other taxonomy backend.  Most methods simply pass
// through to the underlying store, but Synset() will generally return
// a cached value: the REST layer resolves the synset named in the URL
// on every single request, and this avoids a backend round trip for
// the hot ones.
//
// Only the synset's own fields are cached.  Hyponym edges, images,
// collection pages, and statistics always come from the backend, so
// the cache never has to understand cascades.  Mutations that can
// change a synset's fields invalidate the affected WNIDs.
//
// Caveats
//
// The invalidation only sees writes made through this wrapper.  If the
// underlying database is shared with other writers, their changes are
// invisible until the cached entry is evicted, so this wrapper is only
// appropriate when one process owns all writes.
package cache

import (
	"github.com/atheik/imagenet-browser/taxonomy"
)

type cache struct {
	backend taxonomy.Store
	synsets *lru
}

// New creates a new caching store, wrapping some other store.
func New(backend taxonomy.Store) taxonomy.Store {
	return &cache{
		backend: backend,
		synsets: newLRU(1024),
	}
}

func (cache *cache) Synsets(start, limit int) ([]taxonomy.Synset, bool, error) {
	return cache.backend.Synsets(start, limit)
}

func (cache *cache) Synset(wnid string) (taxonomy.Synset, error) {
	return cache.synsets.Get(wnid, cache.backend.Synset)
}

func (cache *cache) CreateSynset(synset taxonomy.Synset) error {
	// Misses are never cached, so there is nothing to invalidate.
	return cache.backend.CreateSynset(synset)
}

func (cache *cache) ReplaceSynset(wnid string, synset taxonomy.Synset) error {
	cache.synsets.Remove(wnid)
	cache.synsets.Remove(synset.WNID)
	return cache.backend.ReplaceSynset(wnid, synset)
}

func (cache *cache) DeleteSynset(wnid string) error {
	cache.synsets.Remove(wnid)
	return cache.backend.DeleteSynset(wnid)
}

func (cache *cache) Hyponyms(wnid string, start, limit int) ([]taxonomy.Synset, bool, error) {
	return cache.backend.Hyponyms(wnid, start, limit)
}

func (cache *cache) Hyponym(wnid, hyponym string) (taxonomy.Synset, error) {
	return cache.backend.Hyponym(wnid, hyponym)
}

func (cache *cache) AddHyponym(wnid, hyponym string) error {
	return cache.backend.AddHyponym(wnid, hyponym)
}

func (cache *cache) RemoveHyponym(wnid, hyponym string) error {
	return cache.backend.RemoveHyponym(wnid, hyponym)
}

func (cache *cache) Images(wnid string, start, limit int) ([]taxonomy.Image, bool, error) {
	return cache.backend.Images(wnid, start, limit)
}

func (cache *cache) Image(wnid string, imid int) (taxonomy.Image, error) {
	return cache.backend.Image(wnid, imid)
}

func (cache *cache) CreateImage(wnid string, image taxonomy.Image) error {
	return cache.backend.CreateImage(wnid, image)
}

func (cache *cache) ReplaceImage(wnid string, imid int, image taxonomy.Image) error {
	return cache.backend.ReplaceImage(wnid, imid, image)
}

func (cache *cache) DeleteImage(wnid string, imid int) error {
	return cache.backend.DeleteImage(wnid, imid)
}

func (cache *cache) Stats() (taxonomy.Stats, error) {
	return cache.backend.Stats()
}
