package TreeMap

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Trees"
)

const maxCorpusKeys = 20000

func insertElements(m *TreeMap[int, string]) {
	for _, k := range []int{5, 3, 7, 2, 4, 6, 8} {
		m.Insert(k, "value"+strconv.Itoa(k))
	}
}

func at[K int | string, V any](t *testing.T, m *TreeMap[K, V], k K) V {
	t.Helper()
	p, err := m.At(k)
	require.NoError(t, err)
	return *p
}

func assertMissing[K int | string, V any](t *testing.T, m *TreeMap[K, V], k K) {
	t.Helper()
	_, err := m.At(k)
	var kerr *Go_Containers.KeyNotFoundError
	assert.True(t, errors.As(err, &kerr), "key %v", k)
}

func TestTreeMap_Insert(t *testing.T) {
	m := New[int, string]()
	_, ok := m.Insert(1, "value1")
	assert.True(t, ok)
	assert.Equal(t, "value1", at(t, m, 1))

	_, ok = m.Insert(1, "value2")
	assert.False(t, ok)
	assert.Equal(t, "value1", at(t, m, 1))

	_, ok = m.Insert(0, "value0")
	assert.True(t, ok)
	assert.Equal(t, "value0", at(t, m, 0))
	assertMissing(t, m, 999)
}

func TestTreeMap_InsertOrAssign(t *testing.T) {
	m := New[int, string]()
	_, ok := m.Insert(0, "value3")
	assert.True(t, ok)
	_, ok = m.InsertOrAssign(0, "value4")
	assert.False(t, ok)
	assert.Equal(t, "value4", at(t, m, 0))
	assert.EqualValues(t, 1, m.Size())
}

func TestTreeMap_Ref(t *testing.T) {
	m := New[int, string]()
	ref := make(map[int]string)
	*m.Ref(1) = "value1"
	ref[1] = "value1"
	assert.Equal(t, ref[1], *m.Ref(1))
	assert.Equal(t, ref[2], *m.Ref(2))
	assert.EqualValues(t, 2, m.Size())
}

func TestTreeMap_Erase(t *testing.T) {
	m := New[int, string]()
	m.Erase(m.Begin())
	assert.True(t, m.Empty())

	m.Insert(1, "value1")
	m.Erase(m.Begin())
	assertMissing(t, m, 1)

	for _, c := range []struct {
		k    int
		rest []int
	}{
		{5, []int{4, 6}}, // root
		{3, []int{2, 4}}, // two children
		{8, []int{7}},    // leaf
		{2, []int{4}},
	} {
		m = New[int, string]()
		insertElements(m)
		m.Erase(m.Find(c.k))
		assertMissing(t, m, c.k)
		for _, k := range c.rest {
			assert.Equal(t, "value"+strconv.Itoa(k), at(t, m, k))
		}
		assert.EqualValues(t, 6, m.Size())
	}
}

func TestTreeMap_Iterator(t *testing.T) {
	m := From(Trees.Pair[int, string]{Key: 1, Val: "value1"}, Trees.Pair[int, string]{Key: 2, Val: "value2"})
	it := m.Begin()
	assert.Equal(t, 1, it.Key())
	it.Next()
	assert.Equal(t, 2, it.Key())
	it.Next()
	assert.Equal(t, m.End(), it)

	m.Erase(m.Begin())
	it = m.Begin()
	it.Next()
	it.Prev()
	assert.Equal(t, 2, it.Key())
	assert.Equal(t, 2, m.Last().Key())
}

func TestTreeMap_ClearSwap(t *testing.T) {
	m := New[int, string]()
	insertElements(m)
	m.Clear()
	assert.True(t, m.Empty())

	m.Insert(1, "value1")
	m.Insert(2, "value2")
	o := From(Trees.Pair[int, string]{Key: 3, Val: "value3"}, Trees.Pair[int, string]{Key: 4, Val: "value4"})
	m.Swap(o)
	assert.Equal(t, "value3", at(t, m, 3))
	assert.Equal(t, "value4", at(t, m, 4))
	assert.Equal(t, "value1", at(t, o, 1))
	assert.Equal(t, "value2", at(t, o, 2))
}

func TestTreeMap_InsertMany(t *testing.T) {
	m := New[int, string]()
	rs := m.InsertMany(Trees.Pair[int, string]{Key: 1, Val: "value1"}, Trees.Pair[int, string]{Key: 2, Val: "value2"}, Trees.Pair[int, string]{Key: 3, Val: "value3"})
	for i, r := range rs {
		assert.True(t, r.Inserted)
		assert.Equal(t, i+1, r.It.Key())
		assert.Equal(t, "value"+strconv.Itoa(i+1), at(t, m, i+1))
	}
}

func TestTreeMap_Merge(t *testing.T) {
	m := From(Trees.Pair[int, string]{Key: 1, Val: "a"}, Trees.Pair[int, string]{Key: 2, Val: "a"})
	o := From(Trees.Pair[int, string]{Key: 2, Val: "b"}, Trees.Pair[int, string]{Key: 3, Val: "b"})
	m.Merge(o)
	assert.Equal(t, []int{1, 2, 3}, m.Keys())
	assert.Equal(t, []int{2}, o.Keys())
	assert.Equal(t, "a", at(t, m, 2))
}

func TestTreeMap_CloneMove(t *testing.T) {
	m := New[int, string]()
	insertElements(m)
	c := m.Clone()
	*m.Ref(5) = "changed"
	assert.Equal(t, "value5", at(t, c, 5))

	n := m.Move()
	assert.True(t, m.Empty())
	assert.Equal(t, "changed", at(t, n, 5))
	assert.Equal(t, c.Keys(), n.Keys())
}

func TestTreeMap_Large(t *testing.T) {
	m := New[int, string]()
	for i := range 10000 {
		m.Insert(i, "value"+strconv.Itoa(i))
	}
	for i := range 10000 {
		assert.Equal(t, "value"+strconv.Itoa(i), at(t, m, i))
	}
	t.Logf("depth: %d, size: %d.\n", m.MaxDepth(), m.Size())
}

func TestTreeMap_Range(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{3, 1, 2} {
		m.Insert(k, k)
	}
	m.Range(func(k int, v *int) bool {
		*v *= 10
		return true
	})
	var vs []int
	m.Range(func(k int, v *int) bool {
		vs = append(vs, *v)
		return k < 2
	})
	assert.Equal(t, []int{10, 20}, vs)
}

func loadKeys(t *testing.T) []string {
	t.Helper()
	ks := slices.Clone(testkeys.Load("20kl10"))
	require.NotEmpty(t, ks)
	rand.New(rand.NewSource(0)).Shuffle(len(ks), func(i, j int) {
		ks[i], ks[j] = ks[j], ks[i]
	})
	if len(ks) > maxCorpusKeys {
		ks = ks[:maxCorpusKeys]
	}
	return ks
}

func TestTreeMap_StringKeys(t *testing.T) {
	keys := loadKeys(t)
	m := New[string, int]()
	ref := make(map[string]int)
	for i, k := range keys {
		_, in := ref[k]
		_, ok := m.Insert(k, i)
		assert.NotEqual(t, in, ok)
		if !in {
			ref[k] = i
		}
	}
	require.EqualValues(t, len(ref), m.Size())
	got := m.Keys()
	assert.True(t, slices.IsSorted(got))
	for k, v := range ref {
		assert.Equal(t, v, at(t, m, k))
	}
	for _, k := range keys[:len(keys)/2] {
		m.Erase(m.Find(k))
		delete(ref, k)
	}
	assert.EqualValues(t, len(ref), m.Size())
	for k := range ref {
		assert.True(t, m.Contains(k))
	}
	assert.False(t, m.t.Corrupt())
}
