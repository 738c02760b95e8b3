// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"cmp"

	"github.com/bitmark-inc/maps/avl"
)

// Pair - a key and its value, used to construct a map
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map - ordered map backed by an AVL tree
type Map[K, V any] struct {
	tree    *avl.Tree[K, V]
	compare func(a, b K) int
}

// New - create an empty map ordered by the natural order of the key type
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an empty map ordered by compare
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{
		tree:    avl.NewFunc[K, V](compare),
		compare: compare,
	}
}

// NewFromPairs - create a map holding pairs, a later pair overwrites
// the value of an earlier pair with the same key
func NewFromPairs[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		*m.Index(p.Key) = p.Value
	}
	return m
}

// Clone - a new map with a copy of every pair, sharing nothing with m
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := NewFunc[K, V](m.compare)
	c.copyPairs(m)
	return c
}

// CopyFrom - replace the contents of m by a copy of the pairs of other
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	m.compare = other.compare
	m.tree = avl.NewFunc[K, V](other.compare)
	m.copyPairs(other)
}

func (m *Map[K, V]) copyPairs(other *Map[K, V]) {
	for c := other.tree.First(); !c.IsEnd(); _ = c.Next() {
		k, _ := c.Key()
		v, _ := c.Value()
		m.tree.Insert(k, v)
	}
}

// Move - a new map that takes over the storage of m, leaving m empty
func (m *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{
		tree:    m.tree,
		compare: m.compare,
	}
	m.tree = avl.NewFunc[K, V](m.compare)
	return moved
}

// MoveFrom - discard the contents of m and take over the storage of
// other, leaving other empty
func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree = other.tree
	m.compare = other.compare
	other.tree = avl.NewFunc[K, V](other.compare)
}

// IsEmpty - true if the map holds no pairs
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Size - number of pairs in the map
func (m *Map[K, V]) Size() int {
	return m.tree.Count()
}

// Clear - remove every pair
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}
