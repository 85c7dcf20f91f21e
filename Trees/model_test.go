package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/require"
)

// TestAVLTree_Model drives the tree and an independent ordered map with the same random
// operations and compares them after every step.
func TestAVLTree_Model(t *testing.T) {
	const (
		ops      = 20000
		keyRange = 2000
	)
	tree := New[int, int, uint16](keyRange)
	model := avltree.NewWithIntComparator()
	for i, _n := 0, ops; i < _n; i++ {
		k := rg.Intn(keyRange)
		switch rg.Intn(5) {
		case 0, 1:
			if _, in := model.Get(k); !in {
				tree.Insert(k, i)
				model.Put(k, i)
			}
		case 2:
			if _, in := model.Get(k); !in {
				tree.FingerInsert(k, i)
				model.Put(k, i)
			}
		case 3:
			if n, _ := tree.FingerSearch(k); n != 0 {
				tree.Delete(n)
				model.Remove(k)
			}
		default:
			n, _ := tree.Search(k)
			v, in := model.Get(k)
			require.Equal(t, in, n != 0, "search of key %d", k)
			if in {
				require.Equal(t, v, tree.Value(n))
			}
		}
		require.Equal(t, model.Size(), int(tree.Size()))
		if m := model.Right(); m != nil {
			require.Equal(t, m.Key, tree.Key(tree.Max()))
		} else {
			require.Zero(t, tree.Max())
		}
		if i%1000 == 0 {
			require.False(t, tree.Corrupt())
			s := tree.Sorted()
			for j, k := range model.Keys() {
				require.Equal(t, k, s[j].Key)
			}
		}
	}
}
