package Maps

import (
	"cmp"

	"github.com/g-m-twostay/go-containers/Trees"
)

// OrderedMap is a map from unique keys to values that iterates in ascending key order.
type OrderedMap[K cmp.Ordered, V any] interface {
	Insert(K, V) (Trees.Iterator[K, V, uint], bool)
	InsertOrAssign(K, V) (Trees.Iterator[K, V, uint], bool)
	At(K) (*V, error)
	Ref(K) *V
	Find(K) Trees.Iterator[K, V, uint]
	Contains(K) bool
	Erase(Trees.Iterator[K, V, uint])
	Begin() Trees.Iterator[K, V, uint]
	End() Trees.Iterator[K, V, uint]
	Keys() []K
	Range(func(K, *V) bool)
	Size() uint
	Empty() bool
	MaxSize() uint
	Clear()
}
