package bplus

// insertIntoParent inserts sepKey and the new right sibling into the parent
// recorded on the split node. Parent ids are maintained on every split, so no
// search from the root is needed.
func (t *BPlusTree[K, V]) insertIntoParent(parentID int64, sepKey K, right *Node[K, V]) *Node[K, V] {
	parent := t.store.mustGet(parentID)
	parent.insertChild(sepKey, right, t.cmp)
	return parent
}
