package bplus

// Lookup returns the value stored under key.
func (t *BPlusTree[K, V]) Lookup(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.findLeaf(key).leafLookup(key, t.cmp)
}

// LowerBound returns the smallest key >= key and its value.
//
// When the routed leaf holds no such key, only the immediate next leaf is
// consulted, and only its first entry. An empty next leaf (left behind by
// removals) ends the search with found == false even if later leaves hold
// a qualifying key.
func (t *BPlusTree[K, V]) LowerBound(key K) (K, V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf := t.findLeaf(key)
	if k, v, ok := leaf.leafLowerBound(key, t.cmp); ok {
		return k, v, true
	}

	var (
		zeroK K
		zeroV V
	)
	next, ok := t.store.get(leaf.next)
	if !ok || len(next.keys) == 0 {
		return zeroK, zeroV, false
	}
	return next.keys[0], next.values[0], true
}
