package bplus

// NewNode creates a new node of given type and returns its pointer.
// The node has no id until the store allocates it.
func NewNode[K, V any](nodeType NodeType, order int) *Node[K, V] {
	n := &Node[K, V]{
		nodeType: nodeType,
		keys:     make([]K, 0, order+1),
	}
	if nodeType == NodeInternal {
		n.children = make([]int64, 0, order+2)
	} else {
		n.values = make([]V, 0, order+1)
	}
	return n
}

func (n *Node[K, V]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// isFull reports whether the node must be split: a leaf at order keys,
// an internal node past order children.
func (n *Node[K, V]) isFull(order int) bool {
	if n.isLeaf() {
		return len(n.keys) >= order
	}
	return len(n.children) > order
}
