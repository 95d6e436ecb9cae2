package bplus

import "github.com/sirupsen/logrus"

// splitLeaf moves the upper half of leaf into a new right sibling and returns
// it with its first key. The key stays in the sibling and is copied upward.
func (t *BPlusTree[K, V]) splitLeaf(leaf *Node[K, V]) (*Node[K, V], K) {
	mid := len(leaf.keys) / 2

	right := t.store.allocate(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)
	right.next = leaf.next // right inherits leaf's old next pointer
	right.parent = leaf.parent

	clear(leaf.values[mid:])
	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]
	leaf.next = right.id

	sepKey := right.keys[0]
	t.stats.leafSplits++
	t.log.WithFields(logrus.Fields{
		"leaf":  leaf.id,
		"right": right.id,
		"sep":   sepKey,
	}).Debug("split leaf")
	return right, sepKey
}
