// Package TreeSet provides an ordered set backed by an unbalanced binary search tree.
package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-containers/Sets"
	"github.com/g-m-twostay/go-containers/Trees"
)

var _ Sets.OrderedSet[int, Iterator[int]] = (*TreeSet[int])(nil)

// TreeSet of unique elements of type E. Each element is stored as a (e,e) pair.
type TreeSet[E cmp.Ordered] struct {
	t *Trees.Tree[E, E, uint]
}

// Iterator is a bidirectional in-order cursor over a TreeSet. Elements can't be modified through
// it. Iterators are comparable with ==.
type Iterator[E cmp.Ordered] struct {
	it Trees.Iterator[E, E, uint]
}

// Result of inserting one element.
type Result[E cmp.Ordered] struct {
	It       Iterator[E]
	Inserted bool
}

// Next moves to the next larger element, or to end after the largest one. From end it moves to the
// largest element.
func (u *Iterator[E]) Next() {
	u.it.Next()
}

// Prev moves to the next smaller element, or to end before the smallest one. From end it moves to
// the smallest element.
func (u *Iterator[E]) Prev() {
	u.it.Prev()
}

func (u Iterator[E]) End() bool {
	return u.it.End()
}

func (u Iterator[E]) Valid() bool {
	return u.it.Valid()
}

// Key is the element u points to.
func (u Iterator[E]) Key() E {
	return u.it.Key()
}

// Value is the same as Key.
func (u Iterator[E]) Value() E {
	return u.it.Key()
}

func (u Iterator[E]) Equal(o Iterator[E]) bool {
	return u.it.Equal(o.it)
}

func New[E cmp.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E, E, uint](0)}
}

// From builds a set of the given elements, dropping repeats.
func From[E cmp.Ordered](es ...E) *TreeSet[E] {
	u := &TreeSet[E]{Trees.New[E, E, uint](uint(len(es)))}
	for _, e := range es {
		u.t.Insert(e, e)
	}
	return u
}

func (u *TreeSet[E]) Empty() bool {
	return u.t.Empty()
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

func (u *TreeSet[E]) MaxSize() uint {
	return u.t.MaxSize()
}

func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}

// Insert e unless it's already present.
func (u *TreeSet[E]) Insert(e E) (Iterator[E], bool) {
	it, ok := u.t.Insert(e, e)
	return Iterator[E]{it}, ok
}

// InsertMany inserts es in order and reports each outcome.
func (u *TreeSet[E]) InsertMany(es ...E) []Result[E] {
	rs := make([]Result[E], len(es))
	for i, e := range es {
		rs[i].It, rs[i].Inserted = u.Insert(e)
	}
	return rs
}

func (u *TreeSet[E]) Erase(it Iterator[E]) {
	u.t.Erase(it.it)
}

func (u *TreeSet[E]) Find(e E) Iterator[E] {
	return Iterator[E]{u.t.Find(e)}
}

func (u *TreeSet[E]) Contains(e E) bool {
	return u.t.Contains(e)
}

func (u *TreeSet[E]) Begin() Iterator[E] {
	return Iterator[E]{u.t.Begin()}
}

func (u *TreeSet[E]) End() Iterator[E] {
	return Iterator[E]{u.t.End()}
}

func (u *TreeSet[E]) Last() Iterator[E] {
	return Iterator[E]{u.t.Last()}
}

func (u *TreeSet[E]) Swap(o *TreeSet[E]) {
	u.t.Swap(o.t)
}

// Merge moves the elements of o that u lacks into u.
func (u *TreeSet[E]) Merge(o *TreeSet[E]) {
	u.t.Merge(o.t)
}

func (u *TreeSet[E]) Clone() *TreeSet[E] {
	return &TreeSet[E]{u.t.Clone()}
}

func (u *TreeSet[E]) Move() *TreeSet[E] {
	return &TreeSet[E]{u.t.Move()}
}

// Values in ascending order.
func (u *TreeSet[E]) Values() []E {
	es := make([]E, 0, u.t.Size())
	u.t.InOrder(func(e E, _ *E) bool {
		es = append(es, e)
		return true
	})
	return es
}

// Range calls f on each element in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.InOrder(func(e E, _ *E) bool {
		return f(e)
	})
}
