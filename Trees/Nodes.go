package Trees

import "golang.org/x/exp/constraints"

// info is the structural record of a node in the Forest. The zero value is meaningless;
// the sentinel at index 0 has h=-1 and loops back to itself.
// l, r, p are indexes into Forest.ifs; sz is the number of real nodes in the subtree.
// A freed slot keeps h=-1 and uses l as the next free index.
type info[S constraints.Unsigned] struct {
	l, r, p, sz S
	h           int8
}

// Entry is a key value pair as stored in the tree.
type Entry[K any, V any] struct {
	Key K
	Val V
}

// height of a node. The sentinel and freed slots report -1.
func (u *Forest[K, V, S]) height(i S) int8 {
	return u.ifs[i].h
}

// setHeight recomputes the cached height from the children. Returns whether it changed.
func (u *Forest[K, V, S]) setHeight(i S) bool {
	n := &u.ifs[i]
	old := n.h
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
	return n.h != old
}

// setSize recomputes the subtree size from the children.
func (u *Forest[K, V, S]) setSize(i S) {
	n := &u.ifs[i]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}

// balance factor: height(left) - height(right).
func (u *Forest[K, V, S]) balance(i S) int8 {
	return u.ifs[u.ifs[i].l].h - u.ifs[u.ifs[i].r].h
}

// setLeft links c as the left child of i. c may be 0.
func (u *Forest[K, V, S]) setLeft(i, c S) {
	u.ifs[i].l = c
	if c != 0 {
		u.ifs[c].p = i
	}
}

// setRight links c as the right child of i. c may be 0.
func (u *Forest[K, V, S]) setRight(i, c S) {
	u.ifs[i].r = c
	if c != 0 {
		u.ifs[c].p = i
	}
}

// replace old with x under parent p. When p is 0, old is the root held in *root.
func (u *Forest[K, V, S]) replace(p, old, x S, root *S) {
	if p == 0 {
		*root = x
		if x != 0 {
			u.ifs[x].p = 0
		}
	} else if u.ifs[p].l == old {
		u.setLeft(p, x)
	} else {
		u.setRight(p, x)
	}
}

// leftmost real node of the subtree rooting at i, 0 if i is 0.
func (u *Forest[K, V, S]) leftmost(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

// rightmost real node of the subtree rooting at i, 0 if i is 0.
func (u *Forest[K, V, S]) rightmost(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}
