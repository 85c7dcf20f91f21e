package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is an ordered dictionary kept height balanced: at every node the heights of the
// two subtrees differ by at most 1. Besides the root it caches the node with the greatest
// key, which anchors FingerSearch and FingerInsert.
// Nodes are handles of type S into the tree's Forest; 0 is the empty marker. A handle stays
// valid, and keeps its key and value, until that very node is deleted or split at.
// K must not contain NaN when it's a float.
// The tree isn't safe for concurrent use, and neither are two trees sharing a Forest.
type AVLTree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	*Forest[K, V, S]
	root, max S
}

// New creates an empty tree backed by its own Forest with capacity for hint nodes.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *AVLTree[K, V, S] {
	return NewForest[K, V, S](hint).NewTree()
}

// Empty returns a new empty tree sharing the Forest of u. Use it to build operands of Join.
func (u *AVLTree[K, V, S]) Empty() *AVLTree[K, V, S] {
	return u.NewTree()
}

// Root of the tree, 0 if empty.
func (u *AVLTree[K, V, S]) Root() S {
	return u.root
}

// Max is the node with the greatest key, 0 if empty.
// Time: O(1)
func (u *AVLTree[K, V, S]) Max() S {
	return u.max
}

// Min is the node with the smallest key, 0 if empty.
// Time: O(D)
func (u *AVLTree[K, V, S]) Min() S {
	return u.leftmost(u.root)
}

// Size of the tree.
func (u *AVLTree[K, V, S]) Size() S {
	return u.ifs[u.root].sz
}

// Height of the tree, -1 if empty.
func (u *AVLTree[K, V, S]) Height() int {
	return int(u.ifs[u.root].h)
}

func (u *AVLTree[K, V, S]) Key(n S) K {
	return u.kvs[n-1].Key
}

func (u *AVLTree[K, V, S]) Value(n S) V {
	return u.kvs[n-1].Val
}

func (u *AVLTree[K, V, S]) SetValue(n S, v V) {
	u.kvs[n-1].Val = v
}

// IsReal reports whether n addresses a node, as opposed to the empty marker or a freed slot.
func (u *AVLTree[K, V, S]) IsReal(n S) bool {
	return u.live(n)
}

// HeightOf the subtree rooting at n, -1 for the empty marker.
func (u *AVLTree[K, V, S]) HeightOf(n S) int {
	return int(u.ifs[n].h)
}

// Balance factor of n: height of left minus height of right.
func (u *AVLTree[K, V, S]) Balance(n S) int {
	return int(u.balance(n))
}

func (u *AVLTree[K, V, S]) Left(n S) S {
	return u.ifs[n].l
}

func (u *AVLTree[K, V, S]) Right(n S) S {
	return u.ifs[n].r
}

func (u *AVLTree[K, V, S]) Parent(n S) S {
	return u.ifs[n].p
}

// descend from i looking for k. Returns the node holding k or 0, the last real node visited,
// and the number of real nodes visited.
func (u *AVLTree[K, V, S]) descend(i S, k K) (found, last S, visited int) {
	for i != 0 {
		last = i
		visited++
		if ik := u.kvs[i-1].Key; k < ik {
			i = u.ifs[i].l
		} else if k > ik {
			i = u.ifs[i].r
		} else {
			return i, last, visited
		}
	}
	return 0, last, visited
}

// finger climbs from max while k is smaller than the current key. Returns where to start
// descending and the number of edges climbed.
func (u *AVLTree[K, V, S]) finger(k K) (i S, climbed int) {
	for i = u.max; k < u.kvs[i-1].Key && u.ifs[i].p != 0; climbed++ {
		i = u.ifs[i].p
	}
	return
}

// Search k starting at the root. Returns the node holding k or 0, and the number of edges on
// the path from the root to where the search ended, plus 1.
// Time: O(D)
func (u *AVLTree[K, V, S]) Search(k K) (S, int) {
	n, _, visited := u.descend(u.root, k)
	if n != 0 {
		return n, visited
	}
	return 0, visited + 1
}

// FingerSearch k starting at Max. It climbs while k is smaller than the current key, then
// descends like Search. The count covers both the climb and the descent.
// Time: O(distance from Max)
func (u *AVLTree[K, V, S]) FingerSearch(k K) (S, int) {
	if u.max == 0 {
		return 0, 1
	}
	i, climbed := u.finger(k)
	n, _, visited := u.descend(i, k)
	if n != 0 {
		return n, climbed + visited
	}
	return 0, climbed + visited + 1
}

// Has k.
func (u *AVLTree[K, V, S]) Has(k K) bool {
	n, _ := u.Search(k)
	return n != 0
}

// Get the value stored under k.
func (u *AVLTree[K, V, S]) Get(k K) (v V, ok bool) {
	if n, _ := u.Search(k); n != 0 {
		return u.kvs[n-1].Val, true
	}
	return
}

// link a new leaf holding k, v under last, which is the last node of a failed descent.
func (u *AVLTree[K, V, S]) link(last S, k K, v V) (n S, promotes int) {
	n = u.alloc(k, v)
	if last == 0 {
		u.root, u.max = n, n
		return n, 0
	}
	if k < u.kvs[last-1].Key {
		u.setLeft(last, n)
	} else {
		u.setRight(last, n)
		if last == u.max {
			u.max = n
		}
	}
	u.addSize(last, 1)
	return n, u.rebalance(last, &u.root)
}

// Insert k and v descending from the root. Returns the new node, the number of edges from the
// root to it before rebalancing, and the number of height changes during rebalancing. When k is
// already present the tree is unchanged and the existing node is returned with 0 changes.
// At most one rotation (single or double) happens.
// Time: O(D)
func (u *AVLTree[K, V, S]) Insert(k K, v V) (S, int, int) {
	found, last, visited := u.descend(u.root, k)
	if found != 0 {
		return found, visited - 1, 0
	}
	n, promotes := u.link(last, k, v)
	return n, visited, promotes
}

// FingerInsert is Insert with the search for the insertion point starting at Max as in
// FingerSearch. The edge count covers both the climb and the descent.
// Time: O(distance from Max) to locate, O(D) to maintain sizes.
func (u *AVLTree[K, V, S]) FingerInsert(k K, v V) (S, int, int) {
	if u.max == 0 {
		n, promotes := u.link(0, k, v)
		return n, 0, promotes
	}
	i, climbed := u.finger(k)
	found, last, visited := u.descend(i, k)
	if found != 0 {
		return found, climbed + visited - 1, 0
	}
	n, promotes := u.link(last, k, v)
	return n, climbed + visited, promotes
}

// Delete node n from the tree. A node with two children is replaced by its successor node,
// which is moved into n's position; handles to every other node stay valid.
// Time: O(D)
func (u *AVLTree[K, V, S]) Delete(n S) {
	if !u.live(n) {
		panic(InvalidNodeError[S]{n})
	}
	cur := u.ifs[n]
	var start S // where rebalancing starts
	if cur.l == 0 || cur.r == 0 {
		c := cur.l | cur.r // the only child, or 0
		u.replace(cur.p, n, c, &u.root)
		start = cur.p
		if n == u.max {
			if c != 0 {
				u.max = u.rightmost(c)
			} else {
				u.max = cur.p
			}
		}
	} else {
		s := u.leftmost(cur.r)
		if sp := u.ifs[s].p; sp == n {
			start = s
		} else {
			start = sp
			u.setLeft(sp, u.ifs[s].r)
			u.setRight(s, cur.r)
		}
		u.setLeft(s, cur.l)
		u.ifs[s].h, u.ifs[s].sz = cur.h, cur.sz
		u.replace(cur.p, n, s, &u.root)
	}
	u.subSize(start, 1)
	u.addFree(n)
	u.rebalance(start, &u.root)
}

// Successor of n in key order, 0 if n holds the greatest key.
// Time: O(D)
func (u *AVLTree[K, V, S]) Successor(n S) S {
	if !u.live(n) {
		panic(InvalidNodeError[S]{n})
	}
	if n == u.max {
		return 0
	}
	if r := u.ifs[n].r; r != 0 {
		return u.leftmost(r)
	}
	for u.ifs[n].p != 0 && u.ifs[u.ifs[n].p].r == n {
		n = u.ifs[n].p
	}
	return u.ifs[n].p
}

// Predecessor of n in key order, 0 if n holds the smallest key.
// Time: O(D)
func (u *AVLTree[K, V, S]) Predecessor(n S) S {
	if !u.live(n) {
		panic(InvalidNodeError[S]{n})
	}
	if l := u.ifs[n].l; l != 0 {
		return u.rightmost(l)
	}
	for u.ifs[n].p != 0 && u.ifs[u.ifs[n].p].l == n {
		n = u.ifs[n].p
	}
	return u.ifs[n].p
}

// RankOf n in the tree according to in-order, starting from 0.
// Time: O(D)
func (u *AVLTree[K, V, S]) RankOf(n S) S {
	if !u.live(n) {
		panic(InvalidNodeError[S]{n})
	}
	ra := u.ifs[u.ifs[n].l].sz
	for p := u.ifs[n].p; p != 0; n, p = p, u.ifs[p].p {
		if u.ifs[p].r == n {
			ra += u.ifs[u.ifs[p].l].sz + 1
		}
	}
	return ra
}

// Select the node of rank k, starting from 0. Returns 0 when k>=Size().
// Time: O(D)
func (u *AVLTree[K, V, S]) Select(k S) S {
	for i := u.root; i != 0; {
		if l := u.ifs[i].l; k < u.ifs[l].sz {
			i = l
		} else if k > u.ifs[l].sz {
			k -= u.ifs[l].sz + 1
			i = u.ifs[i].r
		} else {
			return i
		}
	}
	return 0
}

// Sorted returns every key value pair in ascending key order. Each call walks the tree again.
// Time: O(n); Space: O(D) besides the result.
func (u *AVLTree[K, V, S]) Sorted() []Entry[K, V] {
	res := make([]Entry[K, V], 0, u.Size())
	u.inOrder(u.root, func(i S) bool {
		res = append(res, u.kvs[i-1])
		return true
	}, make([]S, 0, u.Height()+1))
	return res
}

// Clear the tree, releasing its nodes back to the Forest.
// Time: O(n)
func (u *AVLTree[K, V, S]) Clear() {
	u.release(u.root)
	u.root, u.max = 0, 0
}
