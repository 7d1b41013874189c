package Trees

import (
	"cmp"
	"unsafe"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// Tree is an unbalanced binary search tree mapping keys of type K to values of type V. S is the
// handle type; the tree holds at most MaxSize elements. In multi-value mode equal keys may be
// stored more than once.
type Tree[K cmp.Ordered, V any, S Handle] struct {
	b     *base[K, V, S]
	multi bool
}

// New makes an empty tree with room for hint elements.
func New[K cmp.Ordered, V any, S Handle](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{b: newBase[K, V, S](hint)}
}

// NewMulti makes an empty tree that accepts repeated keys.
func NewMulti[K cmp.Ordered, V any, S Handle](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{b: newBase[K, V, S](hint), multi: true}
}

// From inserts the pairs one at a time in order; a later pair with a key already present is dropped.
func From[K cmp.Ordered, V any, S Handle](pairs ...Pair[K, V]) *Tree[K, V, S] {
	u := New[K, V, S](S(len(pairs)))
	for _, p := range pairs {
		u.Insert(p.Key, p.Val)
	}
	return u
}

// Size is the number of stored elements.
// Time: O(1); Space: O(1)
func (u *Tree[K, V, S]) Size() S {
	return u.b.sz
}

func (u *Tree[K, V, S]) Empty() bool {
	return u.b.sz == 0
}

func (u *Tree[K, V, S]) Multi() bool {
	return u.multi
}

// MaxSize is the largest number of elements the tree can address. It's an upper bound only;
// memory usually runs out first.
func (u *Tree[K, V, S]) MaxSize() S {
	per := uint64(unsafe.Sizeof(info[S]{}) + unsafe.Sizeof(Pair[K, V]{}))
	return S(min(uint64(^S(0)), uint64(^uintptr(0))/per))
}

// Insert (k,v). If k is already stored and u isn't multi-value, nothing changes and the iterator
// to the stored element is returned with false.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Insert(k K, v V) (Iterator[K, V, S], bool) {
	if !u.multi {
		if i := u.b.find(k); i != 0 {
			return u.b.iter(i), false
		}
	}
	return u.b.iter(u.b.attach(k, v)), true
}

// InsertOrAssign is Insert, except that when k is already stored (and u isn't multi-value) its
// value is overwritten. The returned bool reports whether a new element was made.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) InsertOrAssign(k K, v V) (Iterator[K, V, S], bool) {
	if !u.multi {
		if i := u.b.find(k); i != 0 {
			u.b.vs[i-1].Val = v
			return u.b.iter(i), false
		}
	}
	return u.b.iter(u.b.attach(k, v)), true
}

// InsertMany calls Insert for each pair, in order.
func (u *Tree[K, V, S]) InsertMany(pairs ...Pair[K, V]) []Result[K, V, S] {
	rs := make([]Result[K, V, S], len(pairs))
	for i, p := range pairs {
		rs[i].It, rs[i].Inserted = u.Insert(p.Key, p.Val)
	}
	return rs
}

// Find an element with key k. Returns End() if there's none.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Find(k K) Iterator[K, V, S] {
	return u.b.iter(u.b.find(k))
}

func (u *Tree[K, V, S]) Contains(k K) bool {
	return u.b.find(k) != 0
}

// At returns a pointer to the value of k, valid until the next insertion.
// Returns *Go_Containers.KeyNotFoundError if k isn't stored.
func (u *Tree[K, V, S]) At(k K) (*V, error) {
	if i := u.b.find(k); i != 0 {
		return &u.b.vs[i-1].Val, nil
	}
	return nil, &Go_Containers.KeyNotFoundError{Key: k}
}

// Ref returns a pointer to the value of k, inserting the zero value first if k isn't stored.
func (u *Tree[K, V, S]) Ref(k K) *V {
	i := u.b.find(k)
	if i == 0 {
		var zero V
		i = u.b.attach(k, zero)
	}
	return &u.b.vs[i-1].Val
}

// Erase the element it points to. Does nothing if it is End(), belongs to another tree, or its
// element was already erased. Iterators to other elements stay valid.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Erase(it Iterator[K, V, S]) {
	if it.b != u.b || it.i == 0 || !it.Valid() {
		return
	}
	u.b.erase(it.i)
}

// Clear removes every element. All iterators except End() become invalid.
// Time: O(n); Space: O(1)
func (u *Tree[K, V, S]) Clear() {
	u.b.clear()
}

// Swap the contents of u and o. Iterators follow their elements.
// Time: O(1); Space: O(1)
func (u *Tree[K, V, S]) Swap(o *Tree[K, V, S]) {
	u.b, o.b = o.b, u.b
	u.multi, o.multi = o.multi, u.multi
}

// Merge moves into u every element of o whose key isn't in u; in multi-value mode all of them.
// Moved elements are erased from o, the rest stay. Does nothing when o is u.
// Time: O(m*D); Space: O(1)
func (u *Tree[K, V, S]) Merge(o *Tree[K, V, S]) {
	if o.b.sz == 0 || o.b == u.b {
		return
	}
	if u.b.sz == 0 && (u.multi || !o.multi) {
		u.b, o.b = o.b, u.b
		return
	}
	for curI := o.b.leftmost(o.b.root); curI != 0; {
		nextI := o.b.next(curI)
		if p := o.b.vs[curI-1]; u.multi || u.b.find(p.Key) == 0 {
			u.b.attach(p.Key, p.Val)
			o.b.erase(curI)
		}
		curI = nextI
	}
}

// Clone makes an independent deep copy of u.
// Time: O(n); Space: O(n)
func (u *Tree[K, V, S]) Clone() *Tree[K, V, S] {
	return &Tree[K, V, S]{u.b.clone(), u.multi}
}

// Move the contents of u to a new tree, leaving u empty. Iterators follow their elements.
// Time: O(1); Space: O(1)
func (u *Tree[K, V, S]) Move() *Tree[K, V, S] {
	n := &Tree[K, V, S]{u.b, u.multi}
	u.b = newBase[K, V, S](0)
	return n
}

// Begin points to the minimum, or End() if u is empty.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Begin() Iterator[K, V, S] {
	return u.b.iter(u.b.leftmost(u.b.root))
}

// Last points to the maximum, or End() if u is empty.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Last() Iterator[K, V, S] {
	return u.b.iter(u.b.rightmost(u.b.root))
}

func (u *Tree[K, V, S]) End() Iterator[K, V, S] {
	return u.b.iter(0)
}

// InOrder calls f on each element in ascending key order until f returns false. f mustn't insert
// into or erase from u.
// Time: O(n); Space: O(1)
func (u *Tree[K, V, S]) InOrder(f func(K, *V) bool) {
	for curI := u.b.leftmost(u.b.root); curI != 0; curI = u.b.next(curI) {
		if p := &u.b.vs[curI-1]; !f(p.Key, &p.Val) {
			return
		}
	}
}

// MaxDepth is the number of nodes on the longest path from the root.
// Time: O(n); Space: O(D)
func (u *Tree[K, V, S]) MaxDepth() uint {
	return u.b.maxDepth()
}

// Corrupt reports whether the links, ordering or size of u are inconsistent.
func (u *Tree[K, V, S]) Corrupt() bool {
	return u.b.corrupt(!u.multi)
}
