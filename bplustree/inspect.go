// Tree inspection for debugging.
// Use Dump(w) for a human-readable level-by-level listing and WriteDot(w)
// for a Graphviz rendering.

package bplus

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// Dump writes a human-readable BFS listing of the tree to w:
// one block per level, internal nodes with keys and child ids,
// leaves with their pairs and next link.
func (t *BPlusTree[K, V]) Dump(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("B+ tree: order=%d keys=%d height=%d root=%d\n", t.order, t.size, t.height(), t.root)

	queue := []int64{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for _, id := range queue[:size] {
			n := t.store.mustGet(id)
			if !n.isLeaf() {
				p("    [node %d] INTERNAL keys=%v children=%v\n", id, n.keys, n.children)
				queue = append(queue, n.children...)
				continue
			}
			p("    [node %d] LEAF numKeys=%d next=%d\n", id, len(n.keys), n.next)
			for j := range n.keys {
				p("      %v -> %v\n", n.keys[j], n.values[j])
			}
		}
		p("  ---\n")
		queue = queue[size:]
		level++
	}
	return err
}

// WriteDot renders the tree as a directed DOT graph. Solid edges are
// parent-child ownership, dashed edges the leaf chain.
func (t *BPlusTree[K, V]) WriteDot(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "TB")

	nodes := make(map[int64]dot.Node, t.store.len())
	var leaves []*Node[K, V]

	var render func(id int64) dot.Node
	render = func(id int64) dot.Node {
		n := t.store.mustGet(id)
		var label string
		if n.isLeaf() {
			label = fmt.Sprintf("#%d %v", id, n.keys)
			leaves = append(leaves, n)
		} else {
			label = fmt.Sprintf("#%d |%v|", id, n.keys)
		}
		gn := g.Node(fmt.Sprintf("n%d", id)).Label(label).Box()
		nodes[id] = gn
		for _, cid := range n.children {
			g.Edge(gn, render(cid))
		}
		return gn
	}
	render(t.root)

	for _, leaf := range leaves {
		if next, ok := nodes[leaf.next]; ok {
			g.Edge(nodes[leaf.id], next).Attr("style", "dashed").Attr("constraint", "false")
		}
	}

	_, err := io.WriteString(w, g.String())
	return err
}
