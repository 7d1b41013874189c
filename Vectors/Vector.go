// Package Vectors provides a growable array with explicit capacity control.
package Vectors

import (
	"math"
	"slices"
	"unsafe"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// Vector is a contiguous sequence of T. content is the whole buffer, so len(content) is the
// capacity; only content[:sz] holds elements.
type Vector[T any] struct {
	content []T
	sz      int
}

// New vector holding n zero values, with capacity n. It panics if n is negative, like make.
func New[T any](n int) *Vector[T] {
	if n < 0 {
		panic("Vectors: New with negative size")
	}
	v := &Vector[T]{sz: n}
	if n > 0 {
		v.content = make([]T, n)
	}
	return v
}

// From copies items into a new vector whose capacity is len(items).
func From[T any](items ...T) *Vector[T] {
	v := &Vector[T]{sz: len(items)}
	if len(items) > 0 {
		v.content = slices.Clone(items)
	}
	return v
}

func (u *Vector[T]) resize(newCap int) {
	if newCap == 0 {
		u.content = nil
		return
	}
	nc := make([]T, newCap)
	copy(nc, u.content[:u.sz])
	u.content = nc
}

// grow doubles the capacity when the vector is full.
func (u *Vector[T]) grow() {
	if u.sz == len(u.content) {
		u.resize(max(1, len(u.content)<<1))
	}
}

func (u *Vector[T]) Empty() bool {
	return u.sz == 0
}

func (u *Vector[T]) Size() int {
	return u.sz
}

func (u *Vector[T]) Capacity() int {
	return len(u.content)
}

// MaxSize is the largest number of elements the address space could hold.
func (u *Vector[T]) MaxSize() int {
	var zero T
	if s := unsafe.Sizeof(zero); s > 0 {
		return int(min(uint64(math.MaxInt), uint64(^uintptr(0)/s)))
	}
	return math.MaxInt
}

// Reserve capacity for n elements. Returns *Go_Containers.LengthError unless n is greater than
// the current capacity.
func (u *Vector[T]) Reserve(n int) error {
	if n <= len(u.content) {
		return &Go_Containers.LengthError{Want: n, Cap: len(u.content)}
	}
	u.resize(n)
	return nil
}

// ShrinkToFit drops the unused capacity.
func (u *Vector[T]) ShrinkToFit() {
	if u.sz < len(u.content) {
		u.resize(u.sz)
	}
}

// Clear removes the elements but keeps the capacity.
func (u *Vector[T]) Clear() {
	clear(u.content[:u.sz])
	u.sz = 0
}

// PushBack appends item, doubling the capacity if needed.
// Time: amortized O(1)
func (u *Vector[T]) PushBack(item T) {
	u.grow()
	u.content[u.sz] = item
	u.sz++
}

// PopBack removes the last element, or returns *Go_Containers.EmptyContainerError.
func (u *Vector[T]) PopBack() error {
	if u.sz == 0 {
		return &Go_Containers.EmptyContainerError{Op: "pop back"}
	}
	u.sz--
	u.content[u.sz] = *new(T)
	return nil
}

// Insert item before pos, 0<=pos<=Size(). Returns pos, the index of the new element.
// Time: O(n)
func (u *Vector[T]) Insert(pos int, item T) (int, error) {
	if pos < 0 || pos > u.sz {
		return 0, &Go_Containers.OutOfRangeError{Pos: pos, Size: u.sz}
	}
	u.grow()
	copy(u.content[pos+1:u.sz+1], u.content[pos:u.sz])
	u.content[pos] = item
	u.sz++
	return pos, nil
}

// Erase the element at pos. The capacity doesn't change.
// Time: O(n)
func (u *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= u.sz {
		return &Go_Containers.OutOfRangeError{Pos: pos, Size: u.sz}
	}
	copy(u.content[pos:u.sz-1], u.content[pos+1:u.sz])
	u.sz--
	u.content[u.sz] = *new(T)
	return nil
}

// At returns a pointer to the element at pos, valid until the buffer is reallocated.
func (u *Vector[T]) At(pos int) (*T, error) {
	if pos < 0 || pos >= u.sz {
		return nil, &Go_Containers.OutOfRangeError{Pos: pos, Size: u.sz}
	}
	return &u.content[pos], nil
}

// Get the element at pos.
func (u *Vector[T]) Get(pos int) (T, error) {
	if p, err := u.At(pos); err != nil {
		return *new(T), err
	} else {
		return *p, nil
	}
}

func (u *Vector[T]) Front() (T, error) {
	if u.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "get front"}
	}
	return u.content[0], nil
}

func (u *Vector[T]) Back() (T, error) {
	if u.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "get back"}
	}
	return u.content[u.sz-1], nil
}

// Data is the elements in place. It aliases the buffer until the next reallocation.
func (u *Vector[T]) Data() []T {
	return u.content[:u.sz:u.sz]
}

// Begin is the index of the first element.
func (u *Vector[T]) Begin() int {
	return 0
}

// End is one past the index of the last element.
func (u *Vector[T]) End() int {
	return u.sz
}

// Range calls f on each index and element pointer in order until f returns false.
func (u *Vector[T]) Range(f func(int, *T) bool) {
	for i := range u.content[:u.sz] {
		if !f(i, &u.content[i]) {
			return
		}
	}
}

func (u *Vector[T]) Swap(o *Vector[T]) {
	*u, *o = *o, *u
}

// Clone copies the elements into a new vector with the same capacity.
func (u *Vector[T]) Clone() *Vector[T] {
	v := &Vector[T]{sz: u.sz}
	if len(u.content) > 0 {
		v.content = make([]T, len(u.content))
		copy(v.content, u.content[:u.sz])
	}
	return v
}

// Move the buffer to a new vector, leaving u empty with no capacity.
func (u *Vector[T]) Move() *Vector[T] {
	v := &Vector[T]{u.content, u.sz}
	u.content, u.sz = nil, 0
	return v
}
