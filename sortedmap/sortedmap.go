// Package sortedmap provides a map that keeps its entries ordered by key in a
// single slice. Lookups, inserts, updates and deletes all locate their slot
// with search.PartitionPoint.
package sortedmap

import (
	"golang.org/x/exp/slices"

	"github.com/ar90n/partsearch/collection"
	"github.com/ar90n/partsearch/constraints"
	"github.com/ar90n/partsearch/search"
)

type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Map is not safe for concurrent use. The zero value is an empty map.
type Map[K constraints.Ordered, V any] struct {
	entries []Entry[K, V]
}

func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func FromMap[K constraints.Ordered, V any](m map[K]V) *Map[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(entries, func(a, b Entry[K, V]) bool {
		return a.Key < b.Key
	})
	return &Map[K, V]{entries: entries}
}

// Index returns the position of key and true, or the position key would be
// inserted at and false.
func (m *Map[K, V]) Index(key K) (int, bool) {
	i := m.lowerBound(0, key)
	return i, i != len(m.entries) && m.entries[i].Key == key
}

func (m *Map[K, V]) lowerBound(from int, key K) int {
	i, _ := search.PartitionPoint[int, Entry[K, V]](
		collection.Slice[Entry[K, V]](m.entries[from:]),
		collection.Match(func(e Entry[K, V]) bool { return !(e.Key < key) }),
	)
	return from + i
}

func (m *Map[K, V]) Get(key K) (ret V, _ bool) {
	i, ok := m.Index(key)
	if !ok {
		return ret, false
	}
	return m.entries[i].Value, true
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Index(key)
	return ok
}

// Set inserts key or replaces its value.
func (m *Map[K, V]) Set(key K, value V) {
	i, ok := m.Index(key)
	if ok {
		m.entries[i].Value = value
		return
	}
	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.Index(key)
	if !ok {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Each calls fn in key order until it returns false.
func (m *Map[K, V]) Each(fn func(K, V) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Range returns a copy of the entries whose keys lie in [lo, hi).
func (m *Map[K, V]) Range(lo, hi K) []Entry[K, V] {
	if !(lo < hi) {
		return nil
	}
	first := m.lowerBound(0, lo)
	last := m.lowerBound(first, hi)
	return slices.Clone(m.entries[first:last])
}
