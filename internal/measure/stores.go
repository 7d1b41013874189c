// Package measure benchmarks the containers of this module against the ordered and hashed maps
// and the lists of other libraries, and renders the results.
package measure

import (
	"slices"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/g-m-twostay/go-containers/Vectors"
)

// Store is the common surface of the measured maps.
type Store interface {
	Put(k, v int)
	Get(k int) (int, bool)
	Del(k int)
	Len() int
}

// Ordered stores can also be walked in ascending key order.
type Ordered interface {
	Store
	Ascend(f func(k, v int) bool)
}

// Subject names a map implementation and how to make an empty one with room for n keys. Exact
// subjects are expected to agree with each other after any sequence of operations; the others are
// only timed.
type Subject struct {
	Name  string
	New   func(n int) Store
	Exact bool
}

// Subjects lists every measured map. The ordered ones come first, the builtin map is last.
var Subjects = []Subject{
	{Name: "TreeMap", New: func(int) Store { return treeMapStore{TreeMap.New[int, int]()} }, Exact: true},
	{Name: "Tree", New: func(n int) Store { return treeStore{Trees.New[int, int, uint32](uint32(n))} }, Exact: true},
	{Name: "gods/treemap", New: func(int) Store { return godsStore{treemap.NewWithIntComparator()} }, Exact: true},
	{Name: "google/btree", New: func(int) Store { return btreeStore{btree.NewG[kv](32, lessKV)} }, Exact: true},
	{Name: "GoLLRB", New: func(int) Store { return llrbStore{llrb.New()} }, Exact: true},
	// haxmap v1.2.0 loses keys under mixed Set and Del (alphadose/haxmap#32).
	{Name: "haxmap", New: func(n int) Store { return haxStore{haxmap.New[int, int](uintptr(max(n, 8)))} }},
	{Name: "cornelk/hashmap", New: func(n int) Store { return hashStore{hashmap.NewSized[int, int](uintptr(max(n, 8)))} }, Exact: true},
	{Name: "map", New: func(n int) Store { return builtinStore(make(map[int]int, n)) }, Exact: true},
}

type treeMapStore struct{ m *TreeMap.TreeMap[int, int] }

func (s treeMapStore) Put(k, v int) { s.m.InsertOrAssign(k, v) }
func (s treeMapStore) Get(k int) (int, bool) {
	if it := s.m.Find(k); !it.End() {
		return it.Value(), true
	}
	return 0, false
}
func (s treeMapStore) Del(k int) { s.m.Erase(s.m.Find(k)) }
func (s treeMapStore) Len() int  { return int(s.m.Size()) }
func (s treeMapStore) Ascend(f func(k, v int) bool) {
	s.m.Range(func(k int, v *int) bool { return f(k, *v) })
}

// treeStore uses the tree directly, with 32 bit handles.
type treeStore struct{ t *Trees.Tree[int, int, uint32] }

func (s treeStore) Put(k, v int) { s.t.InsertOrAssign(k, v) }
func (s treeStore) Get(k int) (int, bool) {
	if p, err := s.t.At(k); err == nil {
		return *p, true
	}
	return 0, false
}
func (s treeStore) Del(k int) { s.t.Erase(s.t.Find(k)) }
func (s treeStore) Len() int  { return int(s.t.Size()) }
func (s treeStore) Ascend(f func(k, v int) bool) {
	for it := s.t.Begin(); !it.End(); it.Next() {
		if !f(it.Key(), it.Value()) {
			return
		}
	}
}

// Depth of the tree behind s, or 0 when s isn't one of the trees of this module.
func Depth(s Store) uint {
	switch s := s.(type) {
	case treeStore:
		return s.t.MaxDepth()
	case treeMapStore:
		return s.m.MaxDepth()
	}
	return 0
}

type godsStore struct{ m *treemap.Map }

func (s godsStore) Put(k, v int) { s.m.Put(k, v) }
func (s godsStore) Get(k int) (int, bool) {
	if v, ok := s.m.Get(k); ok {
		return v.(int), true
	}
	return 0, false
}
func (s godsStore) Del(k int) { s.m.Remove(k) }
func (s godsStore) Len() int  { return s.m.Size() }
func (s godsStore) Ascend(f func(k, v int) bool) {
	for it := s.m.Iterator(); it.Next(); {
		if !f(it.Key().(int), it.Value().(int)) {
			return
		}
	}
}

type kv struct{ k, v int }

func lessKV(a, b kv) bool { return a.k < b.k }

type btreeStore struct{ t *btree.BTreeG[kv] }

func (s btreeStore) Put(k, v int) { s.t.ReplaceOrInsert(kv{k, v}) }
func (s btreeStore) Get(k int) (int, bool) {
	p, ok := s.t.Get(kv{k: k})
	return p.v, ok
}
func (s btreeStore) Del(k int) { s.t.Delete(kv{k: k}) }
func (s btreeStore) Len() int  { return s.t.Len() }
func (s btreeStore) Ascend(f func(k, v int) bool) {
	s.t.Ascend(func(p kv) bool { return f(p.k, p.v) })
}

type llrbItem kv

func (a llrbItem) Less(b llrb.Item) bool { return a.k < b.(llrbItem).k }

type llrbStore struct{ t *llrb.LLRB }

func (s llrbStore) Put(k, v int) { s.t.ReplaceOrInsert(llrbItem{k, v}) }
func (s llrbStore) Get(k int) (int, bool) {
	if p := s.t.Get(llrbItem{k: k}); p != nil {
		return p.(llrbItem).v, true
	}
	return 0, false
}
func (s llrbStore) Del(k int) { s.t.Delete(llrbItem{k: k}) }
func (s llrbStore) Len() int  { return s.t.Len() }
func (s llrbStore) Ascend(f func(k, v int) bool) {
	if s.t.Len() == 0 {
		return
	}
	s.t.AscendGreaterOrEqual(s.t.Min(), func(i llrb.Item) bool {
		p := i.(llrbItem)
		return f(p.k, p.v)
	})
}

type haxStore struct{ m *haxmap.Map[int, int] }

func (s haxStore) Put(k, v int)          { s.m.Set(k, v) }
func (s haxStore) Get(k int) (int, bool) { return s.m.Get(k) }
func (s haxStore) Del(k int)             { s.m.Del(k) }
func (s haxStore) Len() int              { return int(s.m.Len()) }

type hashStore struct{ m *hashmap.Map[int, int] }

func (s hashStore) Put(k, v int)          { s.m.Set(k, v) }
func (s hashStore) Get(k int) (int, bool) { return s.m.Get(k) }
func (s hashStore) Del(k int)             { s.m.Del(k) }
func (s hashStore) Len() int              { return s.m.Len() }

type builtinStore map[int]int

func (s builtinStore) Put(k, v int) { s[k] = v }
func (s builtinStore) Get(k int) (int, bool) {
	v, ok := s[k]
	return v, ok
}
func (s builtinStore) Del(k int) { delete(s, k) }
func (s builtinStore) Len() int  { return len(s) }

// Seq is the common surface of the measured sequences.
type Seq interface {
	PushBack(v int)
	Insert(pos, v int)
	Erase(pos int)
	Get(pos int) int
	Len() int
}

// SeqSubject names a sequence implementation.
type SeqSubject struct {
	Name string
	New  func() Seq
}

var SeqSubjects = []SeqSubject{
	{"Vector", func() Seq { return vectorSeq{Vectors.New[int](0)} }},
	{"gods/arraylist", func() Seq { return listSeq{arraylist.New()} }},
	{"slice", func() Seq { return &sliceSeq{} }},
}

type vectorSeq struct{ v *Vectors.Vector[int] }

func (s vectorSeq) PushBack(v int)    { s.v.PushBack(v) }
func (s vectorSeq) Insert(pos, v int) { s.v.Insert(pos, v) }
func (s vectorSeq) Erase(pos int)     { s.v.Erase(pos) }
func (s vectorSeq) Get(pos int) int {
	v, _ := s.v.Get(pos)
	return v
}
func (s vectorSeq) Len() int { return s.v.Size() }

type listSeq struct{ l *arraylist.List }

func (s listSeq) PushBack(v int)    { s.l.Add(v) }
func (s listSeq) Insert(pos, v int) { s.l.Insert(pos, v) }
func (s listSeq) Erase(pos int)     { s.l.Remove(pos) }
func (s listSeq) Get(pos int) int {
	v, _ := s.l.Get(pos)
	return v.(int)
}
func (s listSeq) Len() int { return s.l.Size() }

type sliceSeq struct{ s []int }

func (s *sliceSeq) PushBack(v int)    { s.s = append(s.s, v) }
func (s *sliceSeq) Insert(pos, v int) { s.s = slices.Insert(s.s, pos, v) }
func (s *sliceSeq) Erase(pos int)     { s.s = slices.Delete(s.s, pos, pos+1) }
func (s *sliceSeq) Get(pos int) int   { return s.s[pos] }
func (s *sliceSeq) Len() int          { return len(s.s) }
