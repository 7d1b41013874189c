package measure

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Key patterns accepted by Keys.
const (
	Random  = "random"
	Sorted  = "sorted"
	Reverse = "reverse"
)

// Keys makes n distinct keys in the given order. Sorted and reverse keys degrade the unbalanced
// trees to lists.
func Keys(n int, pattern string, seed int64) ([]int, error) {
	ks := make([]int, n)
	for i := range ks {
		ks[i] = i << 1
	}
	switch pattern {
	case Random:
		rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
			ks[i], ks[j] = ks[j], ks[i]
		})
	case Sorted:
	case Reverse:
		slices.Reverse(ks)
	default:
		return nil, fmt.Errorf("measure: unknown key pattern %q", pattern)
	}
	return ks, nil
}

// Config of a Run.
type Config struct {
	N        int
	Pattern  string
	Seed     int64
	Suites   []string // names from SuiteNames; all when empty.
	Subjects []string // all when empty.
	Log      *slog.Logger
}

// Result of one suite on one subject. Times are per key.
type Result struct {
	Suite, Subject string
	N              int
	NsPerKey       float64
	AllocsPerOp    int64
	BytesPerOp     int64
	Depth          uint
}

type mapSuite struct {
	name string
	run  func(b *testing.B, sub Subject, keys []int)
}

type seqSuite struct {
	name string
	run  func(b *testing.B, sub SeqSubject, keys []int)
}

func fill(sub Subject, keys []int) Store {
	s := sub.New(len(keys))
	for _, k := range keys {
		s.Put(k, k)
	}
	return s
}

var sideEff int

var mapSuites = []mapSuite{
	{"insert", func(b *testing.B, sub Subject, keys []int) {
		for range b.N {
			fill(sub, keys)
		}
	}},
	{"find", func(b *testing.B, sub Subject, keys []int) {
		s := fill(sub, keys)
		b.ResetTimer()
		for range b.N {
			for _, k := range keys {
				v, _ := s.Get(k)
				sideEff += v
				v, _ = s.Get(k + 1)
				sideEff += v
			}
		}
	}},
	{"erase", func(b *testing.B, sub Subject, keys []int) {
		for range b.N {
			b.StopTimer()
			s := fill(sub, keys)
			b.StartTimer()
			for _, k := range keys {
				s.Del(k)
			}
		}
	}},
	{"iterate", func(b *testing.B, sub Subject, keys []int) {
		s := fill(sub, keys).(Ordered)
		b.ResetTimer()
		for range b.N {
			s.Ascend(func(k, v int) bool {
				sideEff += v
				return true
			})
		}
	}},
}

var seqSuites = []seqSuite{
	{"push", func(b *testing.B, sub SeqSubject, keys []int) {
		for range b.N {
			s := sub.New()
			for _, k := range keys {
				s.PushBack(k)
			}
		}
	}},
	{"insert-front", func(b *testing.B, sub SeqSubject, keys []int) {
		keys = keys[:min(len(keys), 1<<12)]
		for range b.N {
			s := sub.New()
			for _, k := range keys {
				s.Insert(0, k)
			}
		}
	}},
	{"get", func(b *testing.B, sub SeqSubject, keys []int) {
		s := sub.New()
		for _, k := range keys {
			s.PushBack(k)
		}
		b.ResetTimer()
		for range b.N {
			for i := range s.Len() {
				sideEff += s.Get(i)
			}
		}
	}},
}

// SuiteNames lists the suites in the order Run runs them.
func SuiteNames() []string {
	ns := make([]string, 0, len(mapSuites)+len(seqSuites))
	for _, s := range mapSuites {
		ns = append(ns, s.name)
	}
	for _, s := range seqSuites {
		ns = append(ns, s.name)
	}
	return ns
}

func pick(filter []string, name string) bool {
	return len(filter) == 0 || slices.Contains(filter, name)
}

// Run the selected suites on the selected subjects with testing.Benchmark. testing.Init must have
// been called when running outside of a test binary.
func Run(cfg Config) ([]Result, error) {
	keys, err := Keys(cfg.N, cfg.Pattern, cfg.Seed)
	if err != nil {
		return nil, err
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	for _, name := range cfg.Suites {
		if !slices.Contains(SuiteNames(), name) {
			return nil, fmt.Errorf("measure: unknown suite %q", name)
		}
	}
	var rs []Result
	record := func(suite, subject string, br testing.BenchmarkResult, n int, depth uint) {
		r := Result{Suite: suite, Subject: subject, N: n, AllocsPerOp: br.AllocsPerOp(), BytesPerOp: br.AllocedBytesPerOp(), Depth: depth}
		if br.N > 0 && n > 0 {
			r.NsPerKey = float64(br.T.Nanoseconds()) / float64(br.N) / float64(n)
		}
		log.Info("measured", "suite", suite, "subject", subject, "ns/key", r.NsPerKey, "runs", br.N)
		rs = append(rs, r)
	}
	for _, su := range mapSuites {
		if !pick(cfg.Suites, su.name) {
			continue
		}
		for _, sub := range Subjects {
			if !pick(cfg.Subjects, sub.Name) {
				continue
			}
			probe := fill(sub, keys)
			if _, ok := probe.(Ordered); !ok && su.name == "iterate" {
				log.Debug("skipped unordered subject", "suite", su.name, "subject", sub.Name)
				continue
			}
			log.Info("running", "suite", su.name, "subject", sub.Name, "n", len(keys))
			start := time.Now()
			br := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				su.run(b, sub, keys)
			})
			log.Debug("finished", "suite", su.name, "subject", sub.Name, "elapsed", time.Since(start))
			record(su.name, sub.Name, br, len(keys), Depth(probe))
		}
	}
	for _, su := range seqSuites {
		if !pick(cfg.Suites, su.name) {
			continue
		}
		n := len(keys)
		if su.name == "insert-front" {
			n = min(n, 1<<12)
		}
		for _, sub := range SeqSubjects {
			if !pick(cfg.Subjects, sub.Name) {
				continue
			}
			log.Info("running", "suite", su.name, "subject", sub.Name, "n", n)
			br := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				su.run(b, sub, keys)
			})
			record(su.name, sub.Name, br, n, 0)
		}
	}
	return rs, nil
}

// Check applies the same random puts and deletes to every exact map subject and reports the first
// disagreement with the builtin map.
func Check(n int, seed int64) error {
	var subs []Subject
	for _, sub := range Subjects {
		if sub.Exact {
			subs = append(subs, sub)
		}
	}
	rg := rand.New(rand.NewSource(seed))
	stores := make([]Store, len(subs))
	for i, sub := range subs {
		stores[i] = sub.New(n)
	}
	for range n * 4 {
		k, put := rg.Intn(n), rg.Intn(3) != 0
		for _, s := range stores {
			if put {
				s.Put(k, -k)
			} else {
				s.Del(k)
			}
		}
	}
	want := stores[len(stores)-1]
	for i, s := range stores {
		if s.Len() != want.Len() {
			return fmt.Errorf("measure: %s has %d keys, want %d", subs[i].Name, s.Len(), want.Len())
		}
		for k := range n {
			wv, wok := want.Get(k)
			if v, ok := s.Get(k); v != wv || ok != wok {
				return fmt.Errorf("measure: %s maps %d to (%d,%v), want (%d,%v)", subs[i].Name, k, v, ok, wv, wok)
			}
		}
	}
	var order []int
	for i, s := range stores {
		o, ok := s.(Ordered)
		if !ok {
			continue
		}
		var ks []int
		o.Ascend(func(k, _ int) bool {
			ks = append(ks, k)
			return true
		})
		if order == nil {
			order = ks
		} else if diff := cmp.Diff(order, ks); diff != "" {
			return fmt.Errorf("measure: %s iterates differently from %s (-want +got):\n%s", subs[i].Name, subs[0].Name, diff)
		}
	}
	return nil
}
