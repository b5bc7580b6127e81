package cache

// This file provides a simple LRU cache.  I know of at least two
// other implementations, though it is a pretty simple concept; this
// one holds synset values keyed by WNID and nothing more.

import (
	"container/list"
	"sync"

	"github.com/atheik/imagenet-browser/taxonomy"
)

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.Mutex
	evictList *list.List
	index     map[string]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get retrieves a synset from the cache.  If it is not present, calls
// the fetch function, and if that succeeds, saves the synset and
// returns it.  This returns an error only if the synset is not present
// and the fetch function returns an error.  Fetch failures are not
// remembered.
func (lru *lru) Get(wnid string, fetch func(string) (taxonomy.Synset, error)) (taxonomy.Synset, error) {
	// This happens under the one lock, since even a hit needs to
	// move the item to the back of the eviction list.
	lru.lock.Lock()
	defer lru.lock.Unlock()

	// Is it there?
	if element, present := lru.index[wnid]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(taxonomy.Synset), nil
	}

	// Otherwise call the fetch function
	synset, err := fetch(wnid)
	if err != nil {
		return synset, err
	}
	lru.add(synset)
	return synset, nil
}

// Remove takes a synset out of the cache.  It does nothing if that
// WNID is not cached.
func (lru *lru) Remove(wnid string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[wnid]; present {
		delete(lru.index, wnid)
		lru.evictList.Remove(element)
	}
}

// add is an internal helper, running under the lock, that adds a new
// synset to the cache.  The synset is known to not already exist.
func (lru *lru) add(synset taxonomy.Synset) {
	element := lru.evictList.PushBack(synset)
	lru.index[synset.WNID] = element

	// If this caused the cache to go over size, start evicting items
	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		evicted := head.Value.(taxonomy.Synset)
		delete(lru.index, evicted.WNID)
		lru.evictList.Remove(head)
	}
}
