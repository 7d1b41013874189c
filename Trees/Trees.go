/*
Package Trees implements an unbalanced binary search tree used as the storage of the ordered
containers in Maps and Sets.

# Layout
Nodes live in an arena indexed by handles of type S. Index 0 is the nil node, so the zero value of
S means "no node". Links of a node (parent, left, right) live in ifs, apart from the key/value
pairs in vs; vs[i-1] belongs to ifs[i]. Freed handles are
chained through their left link and reused before the arena grows.

# Ordering
Insertion descends left when the new key is <= the key of the node, so equal keys (only possible in
multi-value mode) are placed left of the existing ones. Lookups use strict comparisons. The tree is
never rebalanced; inserting sorted keys produces a list-shaped tree and O(n) operations.

# Iterators
Iterators are small values holding a handle into the arena. They stay valid across insertions and
across erasure of other nodes, including the two-children case where the in-order successor is
moved into the erased node's position. Erasing the node an iterator points to invalidates it;
Iterator.Valid reports this. Pointers returned by At, Ref and Iterator.Ptr are only valid until the
next insertion, since the arena may be reallocated.
*/
package Trees

import "cmp"

// Pair is a key with its mapped value.
type Pair[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// Result of one insertion in Tree.InsertMany.
type Result[K cmp.Ordered, V any, S Handle] struct {
	It       Iterator[K, V, S]
	Inserted bool
}

func doAssert(condition bool, msg string) {
	if !condition {
		panic("Trees: " + msg)
	}
}
