package bplus

// Insert upserts key. An existing key gets its value replaced; it is never an error.
func (t *BPlusTree[K, V]) Insert(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf := t.findLeaf(key)
	if leaf.leafInsert(key, value, t.cmp) {
		t.size++
	}
	if leaf.isFull(t.order) {
		t.handleSplit(leaf)
	}
}

// handleSplit splits a full node and pushes the separator into its parent,
// cascading while parents overflow.
func (t *BPlusTree[K, V]) handleSplit(node *Node[K, V]) {
	var (
		sibling *Node[K, V]
		sepKey  K
	)
	if node.isLeaf() {
		sibling, sepKey = t.splitLeaf(node)
	} else {
		sibling, sepKey = t.splitInternal(node)
	}

	if node.id == t.root {
		t.createNewRoot(node, sepKey, sibling)
		return
	}

	parent := t.insertIntoParent(node.parent, sepKey, sibling)
	if parent.isFull(t.order) {
		t.handleSplit(parent)
	}
}
