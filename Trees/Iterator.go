package Trees

import "cmp"

// Iterator is a bidirectional in-order cursor over a Tree. The zero value isn't usable; get one from
// a Tree. Iterators are comparable with ==, which is the same as Equal.
type Iterator[K cmp.Ordered, V any, S Handle] struct {
	b   *base[K, V, S]
	i   S
	gen uint64
}

// Next moves to the in-order successor; from the maximum it moves to end. From end it moves to
// the maximum, and stays at end if the tree is empty.
// Time: amortized O(1), O(D) worst case.
func (u *Iterator[K, V, S]) Next() {
	doAssert(u.b != nil, "Next on a zero Iterator")
	if u.i == 0 {
		if u.b.root != 0 {
			*u = u.b.iter(u.b.rightmost(u.b.root))
		}
		return
	}
	doAssert(u.Valid(), "Next on an erased element")
	*u = u.b.iter(u.b.next(u.i))
}

// Prev moves to the in-order predecessor; from the minimum it moves to end. From end it moves to
// the minimum, and stays at end if the tree is empty.
// Time: amortized O(1), O(D) worst case.
func (u *Iterator[K, V, S]) Prev() {
	doAssert(u.b != nil, "Prev on a zero Iterator")
	if u.i == 0 {
		if u.b.root != 0 {
			*u = u.b.iter(u.b.leftmost(u.b.root))
		}
		return
	}
	doAssert(u.Valid(), "Prev on an erased element")
	*u = u.b.iter(u.b.prev(u.i))
}

// End reports whether u is past the last element.
func (u Iterator[K, V, S]) End() bool {
	return u.i == 0
}

// Valid reports whether u is an end iterator or still points to a stored element.
func (u Iterator[K, V, S]) Valid() bool {
	if u.b == nil {
		return false
	}
	return u.i == 0 || (int(u.i) < len(u.b.ifs) && u.b.ifs[u.i].gen == u.gen)
}

func (u Iterator[K, V, S]) deref() *Pair[K, V] {
	doAssert(u.i != 0, "dereferencing end")
	doAssert(u.Valid(), "dereferencing an erased element")
	return &u.b.vs[u.i-1]
}

// Key of the element. Panics on end or invalid iterators.
func (u Iterator[K, V, S]) Key() K {
	return u.deref().Key
}

// Value of the element. Panics on end or invalid iterators.
func (u Iterator[K, V, S]) Value() V {
	return u.deref().Val
}

// Ptr to the mapped value, valid until the next insertion into the tree.
func (u Iterator[K, V, S]) Ptr() *V {
	return &u.deref().Val
}

// Equal reports whether u and o point to the same element of the same tree. End iterators of
// different trees aren't equal.
func (u Iterator[K, V, S]) Equal(o Iterator[K, V, S]) bool {
	return u == o
}
