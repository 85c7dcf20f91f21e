package Trees

// join the trees rooting at lo and hi with x in between: every key under lo is smaller than
// x's key, which is smaller than every key under hi. lo and hi must have no parent and x must
// be detached. Returns the root of the joined tree.
// Time: O(|height(lo)-height(hi)|+1)
func (u *Forest[K, V, S]) join(lo, x, hi S) (root S) {
	hl, hh := u.ifs[lo].h, u.ifs[hi].h
	switch {
	case hl > hh:
		// descend the right spine of lo until the subtree is no taller than hi.
		c, v := S(0), lo
		for v != 0 && u.ifs[v].h > hh {
			c, v = v, u.ifs[v].r
		}
		u.setLeft(x, v)
		u.setRight(x, hi)
		u.setRight(c, x)
		u.setHeight(x)
		u.setSize(x)
		u.addSize(c, u.ifs[hi].sz+1)
		root = lo
		u.rebalance(c, &root)
	case hh > hl:
		c, v := S(0), hi
		for v != 0 && u.ifs[v].h > hl {
			c, v = v, u.ifs[v].l
		}
		u.setRight(x, v)
		u.setLeft(x, lo)
		u.setLeft(c, x)
		u.setHeight(x)
		u.setSize(x)
		u.addSize(c, u.ifs[lo].sz+1)
		root = hi
		u.rebalance(c, &root)
	default:
		u.setLeft(x, lo)
		u.setRight(x, hi)
		u.ifs[x].p = 0
		u.setHeight(x)
		u.setSize(x)
		root = x
	}
	return
}

// detach the subtree rooting at i from its parent, returns i.
func (u *Forest[K, V, S]) detach(i S) S {
	if i != 0 {
		u.ifs[i].p = 0
	}
	return i
}

// adopt copies the subtree rooting at i in the Forest f into u, keeping its shape.
// f must not be u. Returns the root of the copy and the copy of node m, which must be in the subtree.
// Time: O(size of the subtree)
func (u *Forest[K, V, S]) adopt(f *Forest[K, V, S], i, m S) (root, cm S) {
	if i == 0 {
		return 0, 0
	}
	root = u.alloc(f.kvs[i-1].Key, f.kvs[i-1].Val)
	st := [][2]S{{i, root}} //[source,copy]
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		src := f.ifs[top[0]]
		u.ifs[top[1]].h, u.ifs[top[1]].sz = src.h, src.sz
		if top[0] == m {
			cm = top[1]
		}
		if src.l != 0 {
			c := u.alloc(f.kvs[src.l-1].Key, f.kvs[src.l-1].Val)
			u.setLeft(top[1], c)
			st = append(st, [2]S{src.l, c})
		}
		if src.r != 0 {
			c := u.alloc(f.kvs[src.r-1].Key, f.kvs[src.r-1].Val)
			u.setRight(top[1], c)
			st = append(st, [2]S{src.r, c})
		}
	}
	return
}

// Join other and a new node holding k and v into u. Either all keys of u are smaller than k and
// all keys of other are greater, or the opposite way. other is left empty. When other lives in
// another Forest its nodes are copied into the Forest of u first and its old handles are released.
// Returns the new node.
// Time: O(|u.Height()-other.Height()|+1) to link, O(D) to maintain sizes, plus O(other.Size())
// when the Forests differ.
func (u *AVLTree[K, V, S]) Join(other *AVLTree[K, V, S], k K, v V) S {
	donor := other
	if other.Forest != u.Forest {
		other = u.NewTree()
		other.root, other.max = u.adopt(donor.Forest, donor.root, donor.max)
		donor.Clear()
	}
	lo, hi := u, other
	if u.root != 0 && k < u.kvs[u.root-1].Key || u.root == 0 && other.root != 0 && other.kvs[other.root-1].Key < k {
		lo, hi = other, u
	}
	x := u.alloc(k, v)
	u.root = u.join(lo.root, x, hi.root)
	if hi.max != 0 {
		u.max = hi.max
	} else {
		u.max = x
	}
	if other != u {
		other.root, other.max = 0, 0
	}
	return x
}

// Split u at node n. left holds every key smaller than n's key and right every key greater.
// Both trees use the Forest of u; u is left empty and n is released.
// Time: O(D)
func (u *AVLTree[K, V, S]) Split(n S) (left, right *AVLTree[K, V, S]) {
	if !u.live(n) {
		panic(InvalidNodeError[S]{n})
	}
	left, right = u.NewTree(), u.NewTree()
	l, r := u.detach(u.ifs[n].l), u.detach(u.ifs[n].r)
	for prev, a := n, u.ifs[n].p; a != 0; {
		next := u.ifs[a].p
		if u.ifs[a].l == prev {
			// a and its right subtree hold keys greater than n's.
			r = u.join(r, a, u.detach(u.ifs[a].r))
		} else {
			l = u.join(u.detach(u.ifs[a].l), a, l)
		}
		prev, a = a, next
	}
	left.root, right.root = l, r
	left.max = u.rightmost(l)
	if n != u.max {
		right.max = u.max
	}
	u.addFree(n)
	u.root, u.max = 0, 0
	return
}
