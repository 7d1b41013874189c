// Package TreeMap provides an ordered map backed by an unbalanced binary search tree.
package TreeMap

import (
	"cmp"

	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/Trees"
)

var _ Maps.OrderedMap[int, int] = (*TreeMap[int, int])(nil)

// TreeMap maps unique keys to values. Iterators are Trees.Iterator values and follow the rules of
// Trees.Tree: they survive insertion and erasure of other elements.
type TreeMap[K cmp.Ordered, V any] struct {
	t *Trees.Tree[K, V, uint]
}

func New[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.New[K, V, uint](0)}
}

// From builds a map from pairs; for repeated keys the first pair wins.
func From[K cmp.Ordered, V any](pairs ...Trees.Pair[K, V]) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.From[K, V, uint](pairs...)}
}

// At returns a pointer to the value of k, or *Go_Containers.KeyNotFoundError.
func (u *TreeMap[K, V]) At(k K) (*V, error) {
	return u.t.At(k)
}

// Ref returns a pointer to the value of k, inserting the zero value if k is absent.
func (u *TreeMap[K, V]) Ref(k K) *V {
	return u.t.Ref(k)
}

func (u *TreeMap[K, V]) Empty() bool {
	return u.t.Empty()
}

func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

func (u *TreeMap[K, V]) MaxSize() uint {
	return u.t.MaxSize()
}

// Insert (k,v) unless k is present. Returns the iterator to the element with key k and whether it's new.
func (u *TreeMap[K, V]) Insert(k K, v V) (Trees.Iterator[K, V, uint], bool) {
	return u.t.Insert(k, v)
}

// InsertOrAssign is Insert that overwrites the value when k is present.
func (u *TreeMap[K, V]) InsertOrAssign(k K, v V) (Trees.Iterator[K, V, uint], bool) {
	return u.t.InsertOrAssign(k, v)
}

func (u *TreeMap[K, V]) InsertMany(pairs ...Trees.Pair[K, V]) []Trees.Result[K, V, uint] {
	return u.t.InsertMany(pairs...)
}

// Erase the element at it. End and stale iterators are ignored.
func (u *TreeMap[K, V]) Erase(it Trees.Iterator[K, V, uint]) {
	u.t.Erase(it)
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

func (u *TreeMap[K, V]) Find(k K) Trees.Iterator[K, V, uint] {
	return u.t.Find(k)
}

func (u *TreeMap[K, V]) Contains(k K) bool {
	return u.t.Contains(k)
}

func (u *TreeMap[K, V]) Begin() Trees.Iterator[K, V, uint] {
	return u.t.Begin()
}

func (u *TreeMap[K, V]) End() Trees.Iterator[K, V, uint] {
	return u.t.End()
}

func (u *TreeMap[K, V]) Last() Trees.Iterator[K, V, uint] {
	return u.t.Last()
}

func (u *TreeMap[K, V]) Swap(o *TreeMap[K, V]) {
	u.t.Swap(o.t)
}

// Merge moves the elements of o whose keys aren't in u into u.
func (u *TreeMap[K, V]) Merge(o *TreeMap[K, V]) {
	u.t.Merge(o.t)
}

func (u *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{u.t.Clone()}
}

// Move the elements to a new map, leaving u empty.
func (u *TreeMap[K, V]) Move() *TreeMap[K, V] {
	return &TreeMap[K, V]{u.t.Move()}
}

// MaxDepth of the underlying tree.
func (u *TreeMap[K, V]) MaxDepth() uint {
	return u.t.MaxDepth()
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() []K {
	ks := make([]K, 0, u.t.Size())
	u.t.InOrder(func(k K, _ *V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Range calls f on each key and a pointer to its value in ascending key order until f returns false.
func (u *TreeMap[K, V]) Range(f func(K, *V) bool) {
	u.t.InOrder(f)
}
