package bplus

// findLeaf descends from the root to the leaf owning key. Caller holds t.mu.
func (t *BPlusTree[K, V]) findLeaf(key K) *Node[K, V] {
	n := t.store.mustGet(t.root)
	for !n.isLeaf() {
		n = t.store.mustGet(n.route(key, t.cmp))
	}
	return n
}

// leftmostLeaf is the head of the leaf chain.
func (t *BPlusTree[K, V]) leftmostLeaf() *Node[K, V] {
	n := t.store.mustGet(t.root)
	for !n.isLeaf() {
		n = t.store.mustGet(n.children[0])
	}
	return n
}
