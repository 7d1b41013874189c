package Sets

import "cmp"

// OrderedSet holds unique elements and iterates them in ascending order. I is the iterator type of
// the implementation; it gives read access to the elements only.
type OrderedSet[E cmp.Ordered, I any] interface {
	Insert(E) (I, bool)
	Find(E) I
	Contains(E) bool
	Erase(I)
	Begin() I
	End() I
	Values() []E
	Range(func(E) bool)
	Size() uint
	Empty() bool
	MaxSize() uint
	Clear()
}
