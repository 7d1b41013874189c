package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
)

const benchmarkItemCount = 1 << 12

// keys in random order, so the unbalanced tree stays shallow.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

func setupTreeMap(b *testing.B) *TreeMap.TreeMap[int, int] {
	b.Helper()
	m := TreeMap.New[int, int]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	return m
}

func setupGods(b *testing.B) *treemap.Map {
	b.Helper()
	m := treemap.NewWithIntComparator()
	for _, k := range keys {
		m.Put(k, k)
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	m := btree.NewOrderedG[int](32)
	for _, k := range keys {
		m.ReplaceOrInsert(k)
	}
	return m
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for _, k := range keys {
		m.ReplaceOrInsert(llrb.Int(k))
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func Benchmark1ReadTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if p, err := m.At(k); err != nil || *p != k {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadGods(b *testing.B) {
	m := setupGods(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, _ := m.Get(k); v.(int) != k {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, _ := m.Get(k); v != k {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v := m.Get(llrb.Int(k)); v.(llrb.Int) != llrb.Int(k) {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, _ := m.Get(k); v != k {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, _ := m.Get(k); v != k {
				b.Fail()
			}
		}
	}
}

func Benchmark1IterateTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		for it := m.Begin(); !it.End(); it.Next() {
			if it.Key() <= prev {
				b.Fail()
			}
			prev = it.Key()
		}
	}
}

func Benchmark1IterateGods(b *testing.B) {
	m := setupGods(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		for it := m.Iterator(); it.Next(); {
			if it.Key().(int) <= prev {
				b.Fail()
			}
			prev = it.Key().(int)
		}
	}
}

func Benchmark1IterateBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		prev := -1
		m.Ascend(func(k int) bool {
			if k <= prev {
				b.Fail()
			}
			prev = k
			return true
		})
	}
}

func Benchmark1IterateLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		prev := llrb.Int(-1)
		m.AscendGreaterOrEqual(llrb.Int(0), func(i llrb.Item) bool {
			if i.(llrb.Int) <= prev {
				b.Fail()
			}
			prev = i.(llrb.Int)
			return true
		})
	}
}
