package bplus

import "fmt"

// nodeStore is the arena every tree node lives in. Ids start at 1 so that
// the zero id can mean "no node" for parent and next links.
type nodeStore[K, V any] struct {
	nodes    map[int64]*Node[K, V]
	nextID   int64
	order    int
	leaves   int
	internal int
}

func newNodeStore[K, V any](order int) *nodeStore[K, V] {
	return &nodeStore[K, V]{
		nodes:  make(map[int64]*Node[K, V]),
		nextID: 1,
		order:  order,
	}
}

// allocate creates a node of the given type and registers it under a fresh id.
func (s *nodeStore[K, V]) allocate(nodeType NodeType) *Node[K, V] {
	n := NewNode[K, V](nodeType, s.order)
	n.id = s.nextID
	s.nextID++
	s.nodes[n.id] = n
	if nodeType == NodeLeaf {
		s.leaves++
	} else {
		s.internal++
	}
	return n
}

func (s *nodeStore[K, V]) get(id int64) (*Node[K, V], bool) {
	if id == 0 {
		return nil, false
	}
	n, ok := s.nodes[id]
	return n, ok
}

// mustGet resolves an id that the tree structure guarantees to exist.
func (s *nodeStore[K, V]) mustGet(id int64) *Node[K, V] {
	n, ok := s.get(id)
	if !ok {
		panic(fmt.Sprintf("bplus: node %d not in store", id))
	}
	return n
}

func (s *nodeStore[K, V]) len() int {
	return len(s.nodes)
}
