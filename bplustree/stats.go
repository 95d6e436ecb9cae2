package bplus

// Stats is a point-in-time summary of the tree shape.
type Stats struct {
	Keys           int
	Height         int
	Nodes          int
	Leaves         int
	Internals      int
	EmptyLeaves    int
	LeafSplits     uint64
	InternalSplits uint64
	RootSplits     uint64
}

// Len returns the number of stored key/value pairs.
func (t *BPlusTree[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Height returns the number of levels; a tree whose root is a leaf has height 1.
func (t *BPlusTree[K, V]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.height()
}

func (t *BPlusTree[K, V]) height() int {
	h := 1
	n := t.store.mustGet(t.root)
	for !n.isLeaf() {
		n = t.store.mustGet(n.children[0])
		h++
	}
	return h
}

func (t *BPlusTree[K, V]) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	empty := 0
	for leaf := t.leftmostLeaf(); leaf != nil; {
		if len(leaf.keys) == 0 {
			empty++
		}
		next, ok := t.store.get(leaf.next)
		if !ok {
			break
		}
		leaf = next
	}

	return Stats{
		Keys:           t.size,
		Height:         t.height(),
		Nodes:          t.store.len(),
		Leaves:         t.store.leaves,
		Internals:      t.store.internal,
		EmptyLeaves:    empty,
		LeafSplits:     t.stats.leafSplits,
		InternalSplits: t.stats.internalSplits,
		RootSplits:     t.stats.rootSplits,
	}
}
