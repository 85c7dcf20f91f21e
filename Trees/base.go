package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Forest is the arena that owns the nodes of any number of AVLTree. Joining trees of the same
// Forest only relinks nodes; Split hands back trees living in the same Forest.
// A node is addressed by its index S in the arena, index 0 is the sentinel.
// Parent links are plain indexes and carry no ownership.
type Forest[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	ifs  []info[S]     // ifs[0] is the sentinel.
	kvs  []Entry[K, V] // kvs[i] corresponds to ifs[i+1].
	free S             // head of the free list threaded through info.l, 0 when empty.
	rots uint          // rotations so far, a double rotation counts once.
}

// NewForest with capacity for hint nodes.
func NewForest[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Forest[K, V, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	ifs[0].h = -1
	return &Forest[K, V, S]{ifs: ifs, kvs: make([]Entry[K, V], 0, hint)}
}

// NewTree returns an empty tree using u as its arena.
func (u *Forest[K, V, S]) NewTree() *AVLTree[K, V, S] {
	return &AVLTree[K, V, S]{Forest: u}
}

// Len is the number of slots in use by all the trees of u.
func (u *Forest[K, V, S]) Len() int {
	n := len(u.kvs)
	for i := u.free; i != 0; i = u.ifs[i].l {
		n--
	}
	return n
}

// addFree index once.
func (u *Forest[K, V, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free, h: -1}
	u.kvs[a-1] = Entry[K, V]{}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *Forest[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached leaf holding k and v. Holes are filled before appending.
func (u *Forest[K, V, S]) alloc(k K, v V) S {
	a := u.popFree()
	if a == 0 {
		a = S(len(u.ifs))
		if a == 0 || int(a) != len(u.ifs) {
			panic(CapacityError{len(u.ifs)})
		}
		u.ifs = append(u.ifs, info[S]{})
		u.kvs = append(u.kvs, Entry[K, V]{})
	}
	u.ifs[a] = info[S]{sz: 1}
	u.kvs[a-1] = Entry[K, V]{k, v}
	return a
}

// live reports whether i addresses an allocated node.
func (u *Forest[K, V, S]) live(i S) bool {
	return i != 0 && int(i) < len(u.ifs) && u.ifs[i].h >= 0
}

// rotateLeft the subtree rooting at x, turning (x a (y b c)) into (y (x a b) c).
// Returns y.
func (u *Forest[K, V, S]) rotateLeft(x S, root *S) S {
	p, y := u.ifs[x].p, u.ifs[x].r
	u.setRight(x, u.ifs[y].l)
	u.setLeft(y, x)
	u.replace(p, x, y, root)
	u.setHeight(x)
	u.setSize(x)
	u.setHeight(y)
	u.setSize(y)
	return y
}

// rotateRight the subtree rooting at y, turning (y (x a b) c) into (x a (y b c)).
// Returns x.
func (u *Forest[K, V, S]) rotateRight(y S, root *S) S {
	p, x := u.ifs[y].p, u.ifs[y].l
	u.setLeft(y, u.ifs[x].r)
	u.setRight(x, y)
	u.replace(p, y, x, root)
	u.setHeight(y)
	u.setSize(y)
	u.setHeight(x)
	u.setSize(x)
	return x
}

// rotate n whose balance factor is +2 or -2. Returns the new root of the subtree.
func (u *Forest[K, V, S]) rotate(n S, root *S) S {
	u.rots++
	if u.balance(n) > 0 {
		if l := u.ifs[n].l; u.balance(l) < 0 {
			u.rotateLeft(l, root)
		}
		return u.rotateRight(n, root)
	}
	if r := u.ifs[n].r; u.balance(r) > 0 {
		u.rotateRight(r, root)
	}
	return u.rotateLeft(n, root)
}

// rebalance walks from p up to the root. It stops at the first balanced node whose height
// is unchanged. Returns the number of height changes outside of rotations.
func (u *Forest[K, V, S]) rebalance(p S, root *S) (promotes int) {
	for p != 0 {
		if bf := u.balance(p); -2 < bf && bf < 2 {
			if !u.setHeight(p) {
				break
			}
			promotes++
			p = u.ifs[p].p
		} else {
			p = u.ifs[u.rotate(p, root)].p
		}
	}
	return
}

// addSize adds d to the size of every node on the path from p to the root.
func (u *Forest[K, V, S]) addSize(p S, d S) {
	for ; p != 0; p = u.ifs[p].p {
		u.ifs[p].sz += d
	}
}

// subSize subtracts d from the size of every node on the path from p to the root.
func (u *Forest[K, V, S]) subSize(p S, d S) {
	for ; p != 0; p = u.ifs[p].p {
		u.ifs[p].sz -= d
	}
}

// inOrder calls f on each node of the subtree rooting at i in ascending order until f returns false.
// st is used as the stack and is returned for reuse.
func (u *Forest[K, V, S]) inOrder(i S, f func(S) bool, st []S) []S {
	for st = st[:0]; i != 0; i = u.ifs[i].l {
		st = append(st, i)
	}
	for len(st) > 0 {
		i, st = st[len(st)-1], st[:len(st)-1]
		if !f(i) {
			break
		}
		for i = u.ifs[i].r; i != 0; i = u.ifs[i].l {
			st = append(st, i)
		}
	}
	return st
}

// release every node of the subtree rooting at i to the free list.
func (u *Forest[K, V, S]) release(i S) {
	if i == 0 {
		return
	}
	st := []S{i}
	for len(st) > 0 {
		i, st = st[len(st)-1], st[:len(st)-1]
		if l := u.ifs[i].l; l != 0 {
			st = append(st, l)
		}
		if r := u.ifs[i].r; r != 0 {
			st = append(st, r)
		}
		u.addFree(i)
	}
}
