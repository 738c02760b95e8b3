// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/maps/avl"
)

// ConstIterator - read only bidirectional iterator
type ConstIterator[K, V any] struct {
	cursor avl.Cursor[K, V]
}

// Iterator - bidirectional iterator that can modify values
type Iterator[K, V any] struct {
	ConstIterator[K, V]
}

// Begin - iterator at the lowest key, End if the map is empty
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m.CBegin()}
}

// End - iterator one past the highest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m.CEnd()}
}

// CBegin - read only iterator at the lowest key
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{cursor: m.tree.First()}
}

// CEnd - read only iterator one past the highest key
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{cursor: m.tree.End()}
}

// Next - advance to the next higher key
func (it *ConstIterator[K, V]) Next() error {
	return it.cursor.Next()
}

// Prev - move back to the next lower key
func (it *ConstIterator[K, V]) Prev() error {
	return it.cursor.Prev()
}

// Key - key at the iterator
func (it ConstIterator[K, V]) Key() (K, error) {
	return it.cursor.Key()
}

// Value - value at the iterator
func (it ConstIterator[K, V]) Value() (V, error) {
	return it.cursor.Value()
}

// IsEnd - true if the iterator is one past the highest key
func (it ConstIterator[K, V]) IsEnd() bool {
	return it.cursor.IsEnd()
}

// Equal - true if both iterators are at the same position of the same map
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.cursor.Equal(other.cursor)
}

// Const - the read only view of the iterator
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return it.ConstIterator
}

// Equal - true if both iterators are at the same position of the same map
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.cursor.Equal(other.cursor)
}

// ValuePointer - value slot at the iterator
func (it Iterator[K, V]) ValuePointer() (*V, error) {
	return it.cursor.ValuePointer()
}

// SetValue - replace the value at the iterator
func (it Iterator[K, V]) SetValue(value V) error {
	p, err := it.cursor.ValuePointer()
	if nil != err {
		return err
	}
	*p = value
	return nil
}
