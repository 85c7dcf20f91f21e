package Trees

// Corrupt returns whether u violates any of its invariants: search tree order, parent links,
// cached heights and sizes, the AVL balance, the cached max, and that no freed or shared slot
// is reachable.
// Time: O(n+Forest size)
func (u *AVLTree[K, V, S]) Corrupt() bool {
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return true
	}
	if u.max != u.rightmost(u.root) {
		return true
	}
	seen := newBitArray(len(u.ifs))
	for i := u.free; i != 0; i = u.ifs[i].l {
		if int(i) >= len(u.ifs) || seen.Get(int(i)) {
			return true
		}
		seen.Up(int(i))
	}
	bad := false
	var prev S
	u.inOrder(u.root, func(i S) bool {
		n := u.ifs[i]
		if seen.Get(int(i)) || n.h < 0 {
			bad = true
		} else if n.h != 1+max(u.ifs[n.l].h, u.ifs[n.r].h) || n.sz != u.ifs[n.l].sz+u.ifs[n.r].sz+1 {
			bad = true
		} else if bf := u.balance(i); bf < -1 || bf > 1 {
			bad = true
		} else if n.l != 0 && u.ifs[n.l].p != i || n.r != 0 && u.ifs[n.r].p != i {
			bad = true
		} else if prev != 0 && !(u.kvs[prev-1].Key < u.kvs[i-1].Key) {
			bad = true
		}
		seen.Up(int(i))
		prev = i
		return !bad
	}, nil)
	return bad
}
