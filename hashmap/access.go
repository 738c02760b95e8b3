// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"iter"

	"github.com/bitmark-inc/maps/fault"
)

// bucket index of a key
func (m *Map[K, V]) bucketOf(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// locate a key, returns its bucket and position within the bucket
func (m *Map[K, V]) search(key K) (int, int, bool) {
	if 0 == m.size {
		return 0, 0, false
	}
	b := m.bucketOf(key)
	for i, e := range m.buckets[b] {
		if e.key == key {
			return b, i, true
		}
	}
	return b, 0, false
}

// Index - the value slot for key, a zero value is appended to the
// key's bucket if key is absent
func (m *Map[K, V]) Index(key K) *V {
	b := m.bucketOf(key)
	for _, e := range m.buckets[b] {
		if e.key == key {
			return &e.value
		}
	}
	e := &entry[K, V]{key: key}
	m.buckets[b] = append(m.buckets[b], e)
	if 0 == m.size {
		m.low = b
		m.high = b
	} else if b < m.low {
		m.low = b
	} else if b > m.high {
		m.high = b
	}
	m.size += 1
	return &e.value
}

// ValueOf - the value for key, fails if key is absent
func (m *Map[K, V]) ValueOf(key K) (V, error) {
	b, i, ok := m.search(key)
	if !ok {
		var v V
		return v, fault.ErrKeyNotFound
	}
	return m.buckets[b][i].value, nil
}

// ValuePointer - the value slot for key, fails if key is absent
func (m *Map[K, V]) ValuePointer(key K) (*V, error) {
	b, i, ok := m.search(key)
	if !ok {
		return nil, fault.ErrKeyNotFound
	}
	return &m.buckets[b][i].value, nil
}

// Find - iterator positioned on key, or End if key is absent
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m.CFind(key)}
}

// CFind - read only iterator positioned on key, or CEnd if key is absent
func (m *Map[K, V]) CFind(key K) ConstIterator[K, V] {
	b, i, ok := m.search(key)
	if !ok {
		return m.CEnd()
	}
	return ConstIterator[K, V]{m: m, bucket: b, position: i}
}

// Remove - delete key and its value, fails if key is absent
func (m *Map[K, V]) Remove(key K) error {
	b, i, ok := m.search(key)
	if !ok {
		return fault.ErrKeyNotFound
	}
	m.erase(b, i)
	return nil
}

// RemoveAt - delete the pair at an iterator, fails on the end iterator
func (m *Map[K, V]) RemoveAt(it ConstIterator[K, V]) error {
	if it.m != m {
		return fault.ErrIteratorMismatch
	}
	if it.position >= m.BucketLength(it.bucket) {
		return fault.ErrIteratorAtEnd
	}
	m.erase(it.bucket, it.position)
	return nil
}

// unlink an entry keeping the order of the rest of its bucket
func (m *Map[K, V]) erase(b int, i int) {
	chain := m.buckets[b]
	n := len(chain) - 1
	copy(chain[i:], chain[i+1:])
	chain[n] = nil
	m.buckets[b] = chain[:n]
	m.size -= 1

	if 0 == m.size {
		m.low = 0
		m.high = 0
		return
	}
	if 0 != n {
		return
	}
	if b == m.low {
		for 0 == len(m.buckets[m.low]) {
			m.low += 1
		}
	}
	if b == m.high {
		for 0 == len(m.buckets[m.high]) {
			m.high -= 1
		}
	}
}

// All - range over the pairs in bucket order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := m.low; b <= m.high; b += 1 {
			for _, e := range m.buckets[b] {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Equal - true if both maps hold the same keys with equal values
func Equal[K comparable, V comparable](a *Map[K, V], b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x V, y V) bool {
		return x == y
	})
}

// EqualFunc - like Equal, with values compared by eq
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for k, vb := range b.All() {
		va, err := a.ValueOf(k)
		if nil != err || !eq(va, vb) {
			return false
		}
	}
	return true
}
