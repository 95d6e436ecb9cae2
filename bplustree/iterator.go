package bplus

// Ascend calls fn for every pair in key order by following the leaf chain
// from the leftmost leaf, stopping early when fn returns false.
func (t *BPlusTree[K, V]) Ascend(fn func(key K, value V) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf := t.leftmostLeaf()
	for {
		for i := range leaf.keys {
			if !fn(leaf.keys[i], leaf.values[i]) {
				return
			}
		}
		next, ok := t.store.get(leaf.next)
		if !ok {
			return
		}
		leaf = next
	}
}
