package measure

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	ks, err := Keys(100, Random, 1)
	require.NoError(t, err)
	sorted := slices.Clone(ks)
	slices.Sort(sorted)
	assert.False(t, slices.Equal(ks, sorted))
	assert.Equal(t, 0, sorted[0])
	assert.Equal(t, 198, sorted[99])

	ks, err = Keys(5, Sorted, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, ks)

	ks, err = Keys(3, Reverse, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 0}, ks)

	_, err = Keys(3, "spiral", 0)
	assert.ErrorContains(t, err, "spiral")
}

func TestCheck(t *testing.T) {
	for seed := range int64(8) {
		require.NoError(t, Check(1000, seed), "seed %d", seed)
	}
	require.NoError(t, Check(2000, 0))
	require.NoError(t, Check(1, 1))
}

func TestCheck_ExactSubjects(t *testing.T) {
	exact := make(map[string]bool)
	for _, sub := range Subjects {
		exact[sub.Name] = sub.Exact
	}
	assert.False(t, exact["haxmap"])
	assert.True(t, exact["TreeMap"])
	assert.True(t, exact["Tree"])
	assert.True(t, Subjects[len(Subjects)-1].Exact, "the builtin map is the reference")
}

func TestDepth(t *testing.T) {
	ks, _ := Keys(64, Sorted, 0)
	for _, sub := range Subjects[:2] {
		assert.EqualValues(t, 64, Depth(fill(sub, ks)), sub.Name)
	}
	assert.EqualValues(t, 0, Depth(fill(Subjects[len(Subjects)-1], ks)))
}

func TestSeqSubjects(t *testing.T) {
	for _, sub := range SeqSubjects {
		s := sub.New()
		for i := range 10 {
			s.PushBack(i)
		}
		s.Insert(0, -1)
		s.Erase(5)
		assert.Equal(t, 10, s.Len(), sub.Name)
		assert.Equal(t, -1, s.Get(0), sub.Name)
		assert.Equal(t, 5, s.Get(5), sub.Name)
	}
}

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs benchmarks")
	}
	var logs bytes.Buffer
	rs, err := Run(Config{
		N:        256,
		Pattern:  Random,
		Suites:   []string{"find", "push"},
		Subjects: []string{"TreeMap", "map", "Vector"},
		Log:      slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, "find", rs[0].Suite)
	assert.Equal(t, "TreeMap", rs[0].Subject)
	assert.NotZero(t, rs[0].Depth)
	assert.Equal(t, "push", rs[2].Suite)
	assert.Contains(t, logs.String(), "subject=TreeMap")

	_, err = Run(Config{N: 1, Pattern: Random, Suites: []string{"nope"}})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	color.NoColor = true
	rs := []Result{
		{Suite: "find", Subject: "TreeMap", N: 1000, NsPerKey: 12.5, BytesPerOp: 2048, Depth: 21},
		{Suite: "find", Subject: "map", N: 1000, NsPerKey: 3.25},
		{Suite: "push", Subject: "Vector", N: 1000, NsPerKey: 1, AllocsPerOp: 12000},
	}
	var out bytes.Buffer
	require.NoError(t, Render(&out, rs))
	s := strings.ToUpper(out.String())
	for _, want := range []string{"TREEMAP", "12.50", "3.25", "2.0 KIB", "12,000", "1,000", "21", "TOTAL: 3 RESULTS"} {
		assert.Contains(t, s, want)
	}
}
