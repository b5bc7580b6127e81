package cache

import (
	"errors"
	"testing"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/stretchr/testify/assert"
)

func fetchCounter(count *int) func(string) (taxonomy.Synset, error) {
	return func(wnid string) (taxonomy.Synset, error) {
		*count++
		return taxonomy.Synset{WNID: wnid}, nil
	}
}

func TestLRUHit(t *testing.T) {
	lru := newLRU(2)
	var fetches int

	synset, err := lru.Get("n01", fetchCounter(&fetches))
	assert.NoError(t, err)
	assert.Equal(t, "n01", synset.WNID)
	assert.Equal(t, 1, fetches)

	_, err = lru.Get("n01", fetchCounter(&fetches))
	assert.NoError(t, err)
	assert.Equal(t, 1, fetches)
}

func TestLRUError(t *testing.T) {
	lru := newLRU(2)
	oops := errors.New("oops")
	var fetches int

	_, err := lru.Get("n01", func(string) (taxonomy.Synset, error) {
		fetches++
		return taxonomy.Synset{}, oops
	})
	assert.Equal(t, oops, err)

	// The failure was not cached; the next Get fetches again.
	_, err = lru.Get("n01", fetchCounter(&fetches))
	assert.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestLRUEviction(t *testing.T) {
	lru := newLRU(2)
	var fetches int

	lru.Get("n01", fetchCounter(&fetches))
	lru.Get("n02", fetchCounter(&fetches))
	// Touch n01 so that n02 is the eviction candidate.
	lru.Get("n01", fetchCounter(&fetches))
	lru.Get("n03", fetchCounter(&fetches))
	assert.Equal(t, 3, fetches)

	// n01 and n03 are still cached; n02 was evicted.
	lru.Get("n01", fetchCounter(&fetches))
	lru.Get("n03", fetchCounter(&fetches))
	assert.Equal(t, 3, fetches)
	lru.Get("n02", fetchCounter(&fetches))
	assert.Equal(t, 4, fetches)
}

func TestLRURemove(t *testing.T) {
	lru := newLRU(2)
	var fetches int

	lru.Get("n01", fetchCounter(&fetches))
	lru.Remove("n01")
	lru.Remove("n02") // absent, a no-op
	lru.Get("n01", fetchCounter(&fetches))
	assert.Equal(t, 2, fetches)
}
