package bplus

// leafInsert upserts key. It returns true when a new key was added and false
// when an existing value was overwritten.
func (n *Node[K, V]) leafInsert(key K, value V, cmp func(a, b K) int) bool {
	i := lowerBound(n.keys, key, cmp)
	if i < len(n.keys) && cmp(n.keys[i], key) == 0 {
		n.values[i] = value
		return false
	}
	n.keys = insertAt(n.keys, i, key)
	n.values = insertAt(n.values, i, value)
	return true
}

// leafDelete removes key if present. The leaf is allowed to underflow,
// down to zero entries.
func (n *Node[K, V]) leafDelete(key K, cmp func(a, b K) int) bool {
	i := lowerBound(n.keys, key, cmp)
	if i >= len(n.keys) || cmp(n.keys[i], key) != 0 {
		return false
	}
	n.keys = removeAt(n.keys, i)
	n.values = removeAt(n.values, i)
	return true
}

func (n *Node[K, V]) leafLookup(key K, cmp func(a, b K) int) (V, bool) {
	i := lowerBound(n.keys, key, cmp)
	if i < len(n.keys) && cmp(n.keys[i], key) == 0 {
		return n.values[i], true
	}
	var zero V
	return zero, false
}

// leafLowerBound finds the smallest key >= key inside this leaf only.
func (n *Node[K, V]) leafLowerBound(key K, cmp func(a, b K) int) (K, V, bool) {
	i := lowerBound(n.keys, key, cmp)
	if i < len(n.keys) {
		return n.keys[i], n.values[i], true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}
