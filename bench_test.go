package ttset

import (
	"testing"

	googbtree "github.com/google/btree"
	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cache map[string][]string = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

// TestBigKeySetMatchesGoogleBTree drives this set and google/btree with the
// same workload and requires identical ascending traversals.
func TestBigKeySetMatchesGoogleBTree(t *testing.T) {
	keys := getKeys("1mvl5_10")
	if len(keys) > 20000 {
		keys = keys[:20000]
	}

	s := New[string]()
	ref := googbtree.NewOrderedG[string](32)
	for _, k := range keys {
		s.Insert(k)
		ref.ReplaceOrInsert(k)
	}
	require.Equal(t, ref.Len(), s.Size())
	checkTree(t, s)

	ascend := func() []string {
		got := make([]string, 0, ref.Len())
		ref.Ascend(func(k string) bool {
			got = append(got, k)
			return true
		})
		return got
	}
	assert.Equal(t, ascend(), s.Keys())

	for i, k := range keys {
		if i%3 != 0 {
			continue
		}
		s.Delete(k)
		ref.Delete(k)
	}
	require.Equal(t, ref.Len(), s.Size())
	assert.Equal(t, ascend(), s.Keys())
	checkTree(t, s)
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func BenchmarkWordsSetInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			s := New[string]()

			for _, k := range keys {
				s.Insert(k)
			}
		}
	})
}

func BenchmarkWordsGoogleBTreeInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			ref := googbtree.NewOrderedG[string](32)

			for _, k := range keys {
				ref.ReplaceOrInsert(k)
			}
		}
	})
}

func BenchmarkWordsSetContains(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		s := New[string]()
		for _, k := range keys {
			s.Insert(k)
		}
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s.Contains(keys[i%n])
		}
	})
}

func BenchmarkWordsSetIterate(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		s := New[string]()
		for _, k := range keys {
			s.Insert(k)
		}
		b.ResetTimer()

		count := 0
		for i := 0; i < b.N; i++ {
			it := s.Begin()
			for {
				atEnd, err := it.AtEnd()
				if err != nil || atEnd {
					break
				}
				count++
				if it.Next() != nil {
					break
				}
			}
		}
		_ = count
	})
}
