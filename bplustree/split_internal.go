package bplus

import "github.com/sirupsen/logrus"

// splitInternal splits a full internal node and promotes the middle key.
// The promoted key leaves both halves.
func (t *BPlusTree[K, V]) splitInternal(node *Node[K, V]) (*Node[K, V], K) {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promote := node.keys[mid]

	right := t.store.allocate(NodeInternal)

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)
	right.parent = node.parent

	// update parent pointers for children moved to right
	for _, cid := range right.children {
		t.store.mustGet(cid).parent = right.id
	}

	// shrink left node
	clear(node.keys[mid:])
	node.keys = node.keys[:mid]
	node.children = node.children[:mid+1]

	t.stats.internalSplits++
	t.log.WithFields(logrus.Fields{
		"node":    node.id,
		"right":   right.id,
		"promote": promote,
	}).Debug("split internal")
	return right, promote
}
