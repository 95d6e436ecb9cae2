package bplus

// insertChild places sepKey at the number of existing separators <= sepKey
// and the child directly to its right.
func (n *Node[K, V]) insertChild(sepKey K, child *Node[K, V], cmp func(a, b K) int) {
	idx := upperBound(n.keys, sepKey, cmp)
	n.keys = insertAt(n.keys, idx, sepKey)
	n.children = insertAt(n.children, idx+1, child.id)
	child.parent = n.id
}

// route picks the child a key descends into.
func (n *Node[K, V]) route(key K, cmp func(a, b K) int) int64 {
	return n.children[upperBound(n.keys, key, cmp)]
}
