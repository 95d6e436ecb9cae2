package bplus

import (
	"errors"
	"fmt"
)

// ErrCorrupt wraps every structural invariant violation reported by Verify.
var ErrCorrupt = errors.New("bplus: invariant violated")

// Verify walks the whole tree and returns the first broken invariant:
// key order and separator bounds, children count, parent ids, uniform leaf
// depth, node occupancy after splits, leaf chain order and the pair count.
func (t *BPlusTree[K, V]) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		leaves    []*Node[K, V]
		leafDepth = -1
		count     int
	)

	var walk func(id, parent int64, lo, hi *K, depth int) error
	walk = func(id, parent int64, lo, hi *K, depth int) error {
		n, ok := t.store.get(id)
		if !ok {
			return fmt.Errorf("%w: node %d not in store", ErrCorrupt, id)
		}
		if n.parent != parent {
			return fmt.Errorf("%w: node %d has parent %d, expected %d", ErrCorrupt, id, n.parent, parent)
		}
		for i, k := range n.keys {
			if i > 0 && t.cmp(n.keys[i-1], k) >= 0 {
				return fmt.Errorf("%w: node %d keys not strictly ascending at %d", ErrCorrupt, id, i)
			}
			if lo != nil && t.cmp(k, *lo) < 0 {
				return fmt.Errorf("%w: node %d key %v below separator %v", ErrCorrupt, id, k, *lo)
			}
			if hi != nil && t.cmp(k, *hi) >= 0 {
				return fmt.Errorf("%w: node %d key %v not below separator %v", ErrCorrupt, id, k, *hi)
			}
		}

		if n.isLeaf() {
			if len(n.values) != len(n.keys) {
				return fmt.Errorf("%w: leaf %d has %d keys and %d values", ErrCorrupt, id, len(n.keys), len(n.values))
			}
			if n.isFull(t.order) {
				return fmt.Errorf("%w: leaf %d is full but was not split", ErrCorrupt, id)
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return fmt.Errorf("%w: leaf %d at depth %d, expected %d", ErrCorrupt, id, depth, leafDepth)
			}
			leaves = append(leaves, n)
			count += len(n.keys)
			return nil
		}

		if len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("%w: internal %d has %d keys and %d children", ErrCorrupt, id, len(n.keys), len(n.children))
		}
		if n.isFull(t.order) {
			return fmt.Errorf("%w: internal %d is full but was not split", ErrCorrupt, id)
		}
		for i, cid := range n.children {
			clo, chi := lo, hi
			if i > 0 {
				clo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				chi = &n.keys[i]
			}
			if err := walk(cid, n.id, clo, chi, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(t.root, 0, nil, nil, 1); err != nil {
		return err
	}

	var prev *Node[K, V]
	for i, leaf := range leaves {
		var want int64
		if i+1 < len(leaves) {
			want = leaves[i+1].id
		}
		if leaf.next != want {
			return fmt.Errorf("%w: leaf %d links to %d, expected %d", ErrCorrupt, leaf.id, leaf.next, want)
		}
		if len(leaf.keys) == 0 {
			continue
		}
		if prev != nil && t.cmp(prev.keys[len(prev.keys)-1], leaf.keys[0]) >= 0 {
			return fmt.Errorf("%w: leaf chain out of order between %d and %d", ErrCorrupt, prev.id, leaf.id)
		}
		prev = leaf
	}

	if count != t.size {
		return fmt.Errorf("%w: %d pairs reachable, size says %d", ErrCorrupt, count, t.size)
	}
	return nil
}
