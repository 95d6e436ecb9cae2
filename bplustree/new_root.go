package bplus

import "github.com/sirupsen/logrus"

// createNewRoot grows the tree by one level: a new internal root with left
// and right as its two children, separated by promoteKey.
func (t *BPlusTree[K, V]) createNewRoot(left *Node[K, V], promoteKey K, right *Node[K, V]) {
	root := t.store.allocate(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, left.id, right.id)

	left.parent = root.id
	right.parent = root.id
	t.root = root.id

	t.stats.rootSplits++
	t.log.WithFields(logrus.Fields{
		"root":   root.id,
		"left":   left.id,
		"right":  right.id,
		"height": t.height(),
	}).Debug("new root")
}
