package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Dict represents an ordered dictionary implemented using nodes addressed by handles of type N.
// The zero value of N is the empty marker: receivers returning a node return it when there's
// no such node. Receivers taking a node require it to be a real node of the Dict, otherwise
// they panic with InvalidNodeError when that's detectable and the behavior is undefined when
// it isn't (a node of another Dict sharing the same arena).
// Methods are implemented iteratively.
type Dict[K any, V any, N constraints.Unsigned] interface {
	//Search k from the root. Returns the node and the length of the search path in edges plus 1.
	Search(k K) (N, int)
	//FingerSearch is Search starting at Max.
	FingerSearch(k K) (N, int)
	//Insert k and v. Returns the node, the depth it was attached at and the number of height
	//changes while rebalancing. k shouldn't be present.
	Insert(k K, v V) (N, int, int)
	//FingerInsert is Insert starting at Max.
	FingerInsert(k K, v V) (N, int, int)
	//Delete node n.
	Delete(n N)
	//Successor of n in key order.
	Successor(n N) N
	//Predecessor of n in key order.
	Predecessor(n N) N
	//Max is the node with the greatest key.
	Max() N
	//Min is the node with the smallest key.
	Min() N
	//Root node.
	Root() N
	//Size of the Dict.
	Size() N
	Key(n N) K
	Value(n N) V
	//Sorted materializes the Dict in ascending key order.
	Sorted() []Entry[K, V]
	//Corrupt returns whether the Dict has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Dict[int, string, uint32] = (*AVLTree[int, string, uint32])(nil)

// InvalidNodeError is the panic value when a handle doesn't address a live node.
type InvalidNodeError[S constraints.Unsigned] struct {
	Node S
}

func (e InvalidNodeError[S]) Error() string {
	return fmt.Sprintf("Trees: %d isn't a live node", e.Node)
}

// LengthMismatchError is the panic value when From is given values that don't pair up with the keys.
type LengthMismatchError struct {
	Keys, Vals int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("Trees: %d keys but %d values", e.Keys, e.Vals)
}

// CapacityError is the panic value when the Forest outgrows its index type.
type CapacityError struct {
	Len int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("Trees: index type can't address more than %d slots", e.Len)
}

// InvalidSliceError is the panic value when the keys given to From aren't strictly increasing.
// Keys[0] should be smaller than Keys[1] at Index and Index+1.
type InvalidSliceError[K any] struct {
	Keys  [2]K
	Index int
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("Trees: keys %v and %v at %d aren't strictly increasing", e.Keys[0], e.Keys[1], e.Index)
}
