package executor

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// LookupCache keeps recently found lookup answers. Only hits are cached;
// a key's entry is deleted whenever the key is inserted or removed, so a
// cached value is never older than the tree's. All methods are safe on a
// nil receiver, which behaves as an always-empty cache.
type LookupCache struct {
	c *ristretto.Cache[int64, int64]
}

// NewLookupCache returns a cache bounded to size entries, or nil when size
// is zero.
func NewLookupCache(size int64) (*LookupCache, error) {
	if size < 0 {
		return nil, fmt.Errorf("lookup cache: negative size %d", size)
	}
	if size == 0 {
		return nil, nil
	}
	c, err := ristretto.NewCache(&ristretto.Config[int64, int64]{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("lookup cache: %w", err)
	}
	return &LookupCache{c: c}, nil
}

func (lc *LookupCache) Get(key int64) (int64, bool) {
	if lc == nil {
		return 0, false
	}
	return lc.c.Get(key)
}

// Set is best effort: ristretto may drop or delay the write.
func (lc *LookupCache) Set(key, value int64) {
	if lc == nil {
		return
	}
	lc.c.Set(key, value, 1)
}

func (lc *LookupCache) Invalidate(key int64) {
	if lc == nil {
		return
	}
	lc.c.Del(key)
}

// Wait blocks until buffered writes are applied.
func (lc *LookupCache) Wait() {
	if lc == nil {
		return
	}
	lc.c.Wait()
}

func (lc *LookupCache) Close() {
	if lc == nil {
		return
	}
	lc.c.Close()
}
