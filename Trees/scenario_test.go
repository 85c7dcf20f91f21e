package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf[V any](es []Entry[int, V]) []int {
	ks := make([]int, len(es))
	for i, e := range es {
		ks[i] = e.Key
	}
	return ks
}

func TestScenario_InsertOrder(t *testing.T) {
	tree := New[int, string, uint8](8)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, "")
	}
	require.False(t, tree.Corrupt())
	assert.LessOrEqual(t, tree.Height(), 3)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keysOf(tree.Sorted()))
	assert.Equal(t, 9, tree.Key(tree.Max()))
	assert.Equal(t, uint8(7), tree.Size())
	assert.True(t, tree.Has(4))
	assert.False(t, tree.Has(6))
}

func TestScenario_LeftRotation(t *testing.T) {
	tree := New[int, string, uint8](3)

	n, steps, promotes := tree.Insert(10, "a")
	assert.Equal(t, 0, steps)
	assert.Equal(t, 0, promotes)
	assert.Equal(t, n, tree.Root())

	_, steps, promotes = tree.Insert(20, "b")
	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, promotes)

	_, steps, promotes = tree.Insert(30, "c")
	assert.Equal(t, 2, steps)
	assert.Equal(t, 1, promotes)

	require.False(t, tree.Corrupt())
	assert.Equal(t, 20, tree.Key(tree.Root()))
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 30, tree.Key(tree.Max()))
}

func TestScenario_DeleteRoot(t *testing.T) {
	tree := New[int, string, uint8](3)
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k, "")
	}
	tree.Delete(tree.Root())
	require.False(t, tree.Corrupt())
	assert.Equal(t, uint8(2), tree.Size())
	assert.Equal(t, []int{1, 3}, keysOf(tree.Sorted()))
	assert.LessOrEqual(t, tree.Balance(tree.Root()), 1)
	assert.GreaterOrEqual(t, tree.Balance(tree.Root()), -1)
}

func TestScenario_JoinEmpty(t *testing.T) {
	a := New[int, string, uint8](1)
	b := a.Empty()
	x := a.Join(b, 5, "five")
	require.False(t, a.Corrupt())
	assert.Equal(t, uint8(1), a.Size())
	assert.Equal(t, x, a.Root())
	assert.Equal(t, 5, a.Key(a.Root()))
	assert.Equal(t, "five", a.Value(a.Root()))
	assert.Equal(t, x, a.Max())
	assert.Zero(t, b.Size())
}

func TestScenario_SplitAtMax(t *testing.T) {
	tree := New[int, string, uint8](3)
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k, "")
	}
	left, right := tree.Split(tree.Max())
	require.False(t, left.Corrupt())
	require.False(t, right.Corrupt())
	assert.Zero(t, right.Size())
	assert.Zero(t, right.Root())
	assert.Zero(t, right.Max())
	assert.Equal(t, []int{1, 2}, keysOf(left.Sorted()))
	assert.Equal(t, 2, left.Key(left.Max()))
}

func TestEmptyTree(t *testing.T) {
	tree := New[int, string, uint8](0)
	n, steps := tree.Search(1)
	assert.Zero(t, n)
	assert.Equal(t, 1, steps)
	n, steps = tree.FingerSearch(1)
	assert.Zero(t, n)
	assert.Equal(t, 1, steps)
	assert.Zero(t, tree.Max())
	assert.Zero(t, tree.Root())
	assert.Zero(t, tree.Size())
	assert.Equal(t, -1, tree.Height())
	assert.Empty(t, tree.Sorted())
	assert.False(t, tree.Corrupt())
	_, ok := tree.Get(1)
	assert.False(t, ok)
}

func TestFingerInsert_Counts(t *testing.T) {
	tree := New[int, int, uint16](64)
	n, steps, _ := tree.FingerInsert(0, 0)
	require.Equal(t, n, tree.Max())
	assert.Equal(t, 0, steps)
	for k := 1; k < 1000; k++ {
		n, steps, _ = tree.FingerInsert(k, k)
		require.Equal(t, n, tree.Max())
		assert.Equal(t, 1, steps, "increasing key %d attaches right below max", k)
	}
	require.False(t, tree.Corrupt())

	// the same inserts from the root cost the length of the failed search path.
	root := New[int, int, uint16](64)
	for k, _n := 0, 1000; k < _n; k++ {
		_, s := root.Search(k)
		_, steps, _ = root.Insert(k, k)
		assert.Equal(t, s-1, steps)
	}
	require.False(t, root.Corrupt())
}

func TestSuccessor_Contract(t *testing.T) {
	tree := New[int, string, uint8](1)
	n, _, _ := tree.Insert(1, "")
	assert.Zero(t, tree.Successor(n))
	assert.Zero(t, tree.Predecessor(n))
	m, _, _ := tree.Insert(0, "")
	assert.Equal(t, n, tree.Successor(m))
	assert.Equal(t, m, tree.Predecessor(n))
}

func TestJoin_KeepsHandles(t *testing.T) {
	a := New[int, int, uint16](0)
	b := a.Empty()
	var ha, hb []uint16
	for k, _n := 0, 100; k < _n; k++ {
		n, _, _ := a.FingerInsert(k, k)
		ha = append(ha, n)
	}
	for k := 200; k < 230; k++ {
		n, _, _ := b.FingerInsert(k, k)
		hb = append(hb, n)
	}
	b.Join(a, 150, 150)
	require.False(t, b.Corrupt())
	assert.Equal(t, uint16(131), b.Size())
	for i, n := range ha {
		assert.Equal(t, i, b.Key(n))
	}
	for i, n := range hb {
		assert.Equal(t, 200+i, b.Key(n))
	}
	assert.Equal(t, hb[len(hb)-1], b.Max())
}
