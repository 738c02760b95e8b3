// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"

	"github.com/bitmark-inc/maps/fault"
)

// Index - the value slot for key, a zero value is inserted if key is
// absent
func (m *Map[K, V]) Index(key K) *V {
	p, _ := m.tree.Acquire(key)
	return p
}

// ValueOf - the value for key, fails if key is absent
func (m *Map[K, V]) ValueOf(key K) (V, error) {
	c, _ := m.tree.Search(key)
	if c.IsEnd() {
		var v V
		return v, fault.ErrKeyNotFound
	}
	return c.Value()
}

// ValuePointer - the value slot for key, fails if key is absent
func (m *Map[K, V]) ValuePointer(key K) (*V, error) {
	c, _ := m.tree.Search(key)
	if c.IsEnd() {
		return nil, fault.ErrKeyNotFound
	}
	return c.ValuePointer()
}

// Find - iterator positioned on key, or End if key is absent
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m.CFind(key)}
}

// CFind - read only iterator positioned on key, or CEnd if key is absent
func (m *Map[K, V]) CFind(key K) ConstIterator[K, V] {
	c, _ := m.tree.Search(key)
	return ConstIterator[K, V]{cursor: c}
}

// Remove - delete key and its value, fails if key is absent
func (m *Map[K, V]) Remove(key K) error {
	_, err := m.tree.Delete(key)
	return err
}

// RemoveAt - delete the pair at an iterator, fails on the end iterator
func (m *Map[K, V]) RemoveAt(it ConstIterator[K, V]) error {
	if it.cursor.Tree() != m.tree {
		return fault.ErrIteratorMismatch
	}
	if it.cursor.IsEnd() {
		return fault.ErrIteratorAtEnd
	}
	k, _ := it.cursor.Key()
	return m.Remove(k)
}

// All - range over the pairs in increasing key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := m.tree.First(); !c.IsEnd(); _ = c.Next() {
			k, _ := c.Key()
			v, _ := c.Value()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Equal - true if both maps hold the same keys with equal values
func Equal[K any, V comparable](a *Map[K, V], b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x V, y V) bool {
		return x == y
	})
}

// EqualFunc - like Equal, with values compared by eq
func EqualFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for c := b.tree.First(); !c.IsEnd(); _ = c.Next() {
		k, _ := c.Key()
		found, _ := a.tree.Search(k)
		if found.IsEnd() {
			return false
		}
		va, _ := found.Value()
		vb, _ := c.Value()
		if !eq(va, vb) {
			return false
		}
	}
	return true
}
