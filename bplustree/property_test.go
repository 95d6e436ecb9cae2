package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"
	"pgregory.net/rapid"
)

// treeMachine drives the tree and an ordered-map oracle with the same
// operations and checks they agree after every step.
type treeMachine struct {
	tree    *BPlusTree[int, int]
	oracle  btree.Map[int, int]
	removed bool
}

func (m *treeMachine) key(t *rapid.T) int {
	return rapid.IntRange(-64, 256).Draw(t, "key")
}

func (m *treeMachine) Insert(t *rapid.T) {
	k := m.key(t)
	v := rapid.Int().Draw(t, "value")
	m.tree.Insert(k, v)
	m.oracle.Set(k, v)
}

func (m *treeMachine) InsertRun(t *rapid.T) {
	start := m.key(t)
	n := rapid.IntRange(1, 32).Draw(t, "n")
	for k := start; k < start+n; k++ {
		m.tree.Insert(k, k)
		m.oracle.Set(k, k)
	}
}

func (m *treeMachine) Remove(t *rapid.T) {
	k := m.key(t)
	got := m.tree.Remove(k)
	_, had := m.oracle.Delete(k)
	require.Equal(t, had, got, "remove %d", k)
	m.removed = true
}

func (m *treeMachine) Lookup(t *rapid.T) {
	k := m.key(t)
	got, ok := m.tree.Lookup(k)
	want, found := m.oracle.Get(k)
	require.Equal(t, found, ok, "lookup %d", k)
	require.Equal(t, want, got, "lookup %d", k)
}

func (m *treeMachine) LowerBound(t *rapid.T) {
	q := m.key(t)
	gotK, gotV, ok := m.tree.LowerBound(q)

	var wantK, wantV int
	found := false
	m.oracle.Ascend(q, func(k, v int) bool {
		wantK, wantV, found = k, v, true
		return false
	})

	if ok {
		// an answer, when given, is always the true successor
		require.True(t, found, "lowerbound %d answered %d but no key qualifies", q, gotK)
		require.Equal(t, wantK, gotK, "lowerbound %d", q)
		require.Equal(t, wantV, gotV, "lowerbound %d", q)
		return
	}
	if !found {
		return
	}
	// the only way to miss an existing successor is the single hop
	// onto an empty leaf, which needs prior removals
	require.True(t, m.removed, "lowerbound %d missed %d without removals", q, wantK)
	leaf := m.tree.findLeaf(q)
	next, linked := m.tree.store.get(leaf.next)
	require.True(t, linked, "lowerbound %d missed %d from the rightmost leaf", q, wantK)
	require.Empty(t, next.keys, "lowerbound %d missed %d with a non-empty next leaf", q, wantK)
}

func (m *treeMachine) Check(t *rapid.T) {
	require.NoError(t, m.tree.Verify())
	require.Equal(t, m.oracle.Len(), m.tree.Len())
}

func TestTreeMatchesOracle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		order := rapid.SampledFrom([]int{3, 4, 5, 8}).Draw(t, "order")
		tree, err := NewOrdered[int, int](WithOrder(order))
		require.NoError(t, err)
		m := &treeMachine{tree: tree}

		t.Repeat(map[string]func(*rapid.T){
			"":           m.Check,
			"Insert":     m.Insert,
			"InsertRun":  m.InsertRun,
			"Remove":     m.Remove,
			"Lookup":     m.Lookup,
			"LowerBound": m.LowerBound,
		})
	})
}
