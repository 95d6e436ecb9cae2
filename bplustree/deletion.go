package bplus

// Remove deletes key from its leaf and reports whether it was present.
// Nodes are never merged or rebalanced: a leaf may be left empty and stays
// linked in the leaf chain, and separators above it are left untouched.
func (t *BPlusTree[K, V]) Remove(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf := t.findLeaf(key)
	if !leaf.leafDelete(key, t.cmp) {
		return false
	}
	t.size--
	return true
}
