package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/g-m-twostay/go-structs/Sets/HashSet"
	"github.com/g-m-twostay/go-structs/Sets/Trie"
)

// compares with https://github.com/cornelk/hashmap, https://github.com/alphadose/haxmap and
// https://github.com/puzpuzpuz/xsync. Those are concurrent maps, so this measures the single goroutine
// cost of their synchronization against the plain structures here.
func setupHashSet(tb testing.TB) *HashSet.HashSet {
	tb.Helper()
	s := HashSet.New(benchmarkItemCount, 0)
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func setupTrie(tb testing.TB) *Trie.Trie {
	tb.Helper()
	s := Trie.New()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func setupHaxMap(tb testing.TB) *haxmap.Map[int, struct{}] {
	tb.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHashMap(tb testing.TB) *hashmap.Map[int, struct{}] {
	tb.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupXSyncMap(tb testing.TB) *xsync.MapOf[int, struct{}] {
	tb.Helper()
	m := xsync.NewMapOf[int, struct{}]()
	for _, k := range keys {
		m.Store(k, struct{}{})
	}
	return m
}

func BenchmarkHas_HashSet(b *testing.B) {
	s := setupHashSet(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = s.Has(i % keyRange)
	}
}

func BenchmarkHas_Trie(b *testing.B) {
	s := setupTrie(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = s.Has(i % keyRange)
	}
}

func BenchmarkHas_HaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % keyRange)
	}
}

func BenchmarkHas_HashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % keyRange)
	}
}

func BenchmarkHas_XSyncMap(b *testing.B) {
	m := setupXSyncMap(b)
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Load(i % keyRange)
	}
}

func BenchmarkHas_Map(b *testing.B) {
	m := make(map[int]struct{}, benchmarkItemCount)
	for _, k := range keys {
		m[k] = struct{}{}
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m[i%keyRange]
	}
}

func TestMembership_Agree(t *testing.T) {
	hs, tr, hx, hm, xs := setupHashSet(t), setupTrie(t), setupHaxMap(t), setupHashMap(t), setupXSyncMap(t)
	for k := range keyRange {
		want := hs.Has(k)
		_, a := hx.Get(k)
		_, c := hm.Get(k)
		_, d := xs.Load(k)
		if tr.Has(k) != want || a != want || c != want || d != want {
			t.Errorf("membership of %d disagrees", k)
		}
	}
}
