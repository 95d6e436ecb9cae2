// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child ids)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + next id)


- keys: sorted ascending order, no duplicates
- internal nodes: children length == len(keys)+1
- leaf nodes: values length == len(keys)
- leaf nodes linked with `next` for successor lookups
- all leaf nodes at same depth
- every node lives in the node store and is addressed by id; `parent` and
  `next` are ids, never owning references

*/
package bplus

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (nt NodeType) String() string {
	switch nt {
	case NodeInternal:
		return "INTERNAL"
	case NodeLeaf:
		return "LEAF"
	default:
		return "UNKNOWN"
	}
}

const (
	// DefaultOrder is the fan-out used when no order is configured.
	// A leaf is full at DefaultOrder keys, an internal node at DefaultOrder+1 children.
	DefaultOrder = 4
	// MinOrder is the smallest order for which a split leaves both halves non-empty.
	MinOrder = 3
)

type Node[K, V any] struct {
	id       int64
	nodeType NodeType
	keys     []K     // keys in the node (sorted keys)
	children []int64 // only for internal node
	values   []V     // only for leaf node
	next     int64   // only for leaf node, 0 when rightmost
	parent   int64   // 0 for the root
}

type BPlusTree[K, V any] struct {
	root  int64 // root node id
	order int
	store *nodeStore[K, V]
	cmp   func(a, b K) int // key comparator
	log   logrus.FieldLogger
	size  int
	stats splitCounters
	mu    sync.RWMutex
}

// splitCounters are cumulative; they never decrease since nodes are never merged.
type splitCounters struct {
	leafSplits     uint64
	internalSplits uint64
	rootSplits     uint64
}
