package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// From builds a tree holding keys[i] and vals[i] directly in a new Forest. vals may be nil, in
// which case every value is the zero value. keys must be sorted in strictly increasing order.
// If safe==true, this function checks the order and panics with InvalidSliceError if it's broken.
// Otherwise, it's up to the caller (an unsorted input corrupts the tree).
// Node i+1 holds keys[i].
// Time: O(n)
func From[K cmp.Ordered, V any, S constraints.Unsigned](keys []K, vals []V, safe bool) *AVLTree[K, V, S] {
	if vals != nil && len(vals) != len(keys) {
		panic(LengthMismatchError{len(keys), len(vals)})
	}
	if int(S(len(keys))) != len(keys) {
		panic(CapacityError{len(keys)})
	}
	if safe {
		for i := 1; i < len(keys); i++ {
			if !(keys[i-1] < keys[i]) {
				panic(InvalidSliceError[K]{[2]K{keys[i-1], keys[i]}, i - 1})
			}
		}
	}
	f := NewForest[K, V, S](S(len(keys)))
	f.kvs = f.kvs[:len(keys)]
	for i, k := range keys {
		f.kvs[i].Key = k
		if vals != nil {
			f.kvs[i].Val = vals[i]
		}
	}
	u := f.NewTree()
	u.root, f.ifs = buildIfs(S(len(keys)), f.ifs)
	u.max = S(len(keys))
	return u
}

// midOf is equivalent to (a+b)/2 for a<=b without overflowing.
func midOf[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildIfs appends vsLen records to ifs (which holds only the sentinel) shaping them into a
// balanced tree over the indexes 1..vsLen. A segment of m nodes has height bits.Len(m)-1.
func buildIfs[S constraints.Unsigned](vsLen S, ifs []info[S]) (root S, _ []info[S]) {
	if vsLen == 0 {
		return 0, ifs
	}
	ifs = append(ifs, make([]info[S], vsLen)...)
	st := make([][4]S, 0, bits.Len64(uint64(vsLen))+1) //[left,right,mid,parent]
	root = midOf(1, vsLen)
	st = append(st, [4]S{1, vsLen, root, 0})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		n := &ifs[top[2]]
		n.p, n.sz = top[3], top[1]-top[0]+1
		n.h = int8(bits.Len64(uint64(n.sz)) - 1)
		if top[0] < top[2] {
			n.l = midOf(top[0], top[2]-1)
			st = append(st, [4]S{top[0], top[2] - 1, n.l, top[2]})
		}
		if top[2] < top[1] {
			n.r = midOf(top[2]+1, top[1])
			st = append(st, [4]S{top[2] + 1, top[1], n.r, top[2]})
		}
	}
	return root, ifs
}
