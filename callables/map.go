package callables

import "iter"

type mapEntry[V any] struct {
	key   Callable
	value V
}

// Map is a map keyed by Callable equality.
// Not safe for concurrent use.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	len     int
}

func NewMap[V any]() *Map[V] {
	return &Map[V]{
		buckets: make(map[uint64][]mapEntry[V]),
	}
}

func (m *Map[V]) Get(key Callable) (ret V, ok bool) {
	for _, entry := range m.buckets[key.Hash()] {
		if entry.key.Equal(key) {
			return entry.value, true
		}
	}
	return
}

func (m *Map[V]) Set(key Callable, value V) {
	h := key.Hash()
	bucket := m.buckets[h]
	for i, entry := range bucket {
		if entry.key.Equal(key) {
			bucket[i].value = value
			return
		}
	}
	m.buckets[h] = append(bucket, mapEntry[V]{
		key:   key,
		value: value,
	})
	m.len++
}

func (m *Map[V]) Delete(key Callable) bool {
	h := key.Hash()
	bucket := m.buckets[h]
	for i, entry := range bucket {
		if !entry.key.Equal(key) {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(m.buckets, h)
		} else {
			m.buckets[h] = bucket
		}
		m.len--
		return true
	}
	return false
}

func (m *Map[V]) Len() int {
	return m.len
}

// All iterates entries in unspecified order.
func (m *Map[V]) All() iter.Seq2[Callable, V] {
	return func(yield func(Callable, V) bool) {
		for _, bucket := range m.buckets {
			for _, entry := range bucket {
				if !yield(entry.key, entry.value) {
					return
				}
			}
		}
	}
}
