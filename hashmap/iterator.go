// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"github.com/bitmark-inc/maps/fault"
)

// ConstIterator - read only bidirectional iterator, a position within
// a bucket
type ConstIterator[K comparable, V any] struct {
	m        *Map[K, V]
	bucket   int
	position int
}

// Iterator - bidirectional iterator that can modify values
type Iterator[K comparable, V any] struct {
	ConstIterator[K, V]
}

// Begin - iterator at the first pair of the lowest non-empty bucket
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m.CBegin()}
}

// End - iterator just past the last pair of the highest non-empty bucket
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m.CEnd()}
}

// CBegin - read only iterator at the first pair
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: m, bucket: m.low, position: 0}
}

// CEnd - read only iterator just past the last pair
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: m, bucket: m.high, position: len(m.buckets[m.high])}
}

// the entry at the iterator
func (it ConstIterator[K, V]) current() (*entry[K, V], error) {
	chain := it.m.buckets[it.bucket]
	if it.position >= len(chain) {
		return nil, fault.ErrDereferenceEnd
	}
	return chain[it.position], nil
}

// Next - advance to the next pair, crossing to the next non-empty bucket
// when the current one is exhausted
func (it *ConstIterator[K, V]) Next() error {
	chain := it.m.buckets[it.bucket]
	if it.position >= len(chain) {
		return fault.ErrAdvancePastEnd
	}
	it.position += 1
	if it.position < len(chain) {
		return nil
	}
	for b := it.bucket + 1; b <= it.m.high; b += 1 {
		if 0 != len(it.m.buckets[b]) {
			it.bucket = b
			it.position = 0
			return nil
		}
	}
	return nil // at end of the highest bucket
}

// Prev - move back to the previous pair, crossing to the previous
// non-empty bucket at the start of the current one
func (it *ConstIterator[K, V]) Prev() error {
	if it.position > 0 {
		it.position -= 1
		return nil
	}
	for b := it.bucket - 1; b >= it.m.low; b -= 1 {
		if n := len(it.m.buckets[b]); 0 != n {
			it.bucket = b
			it.position = n - 1
			return nil
		}
	}
	return fault.ErrRegressBeforeBegin
}

// Key - key at the iterator
func (it ConstIterator[K, V]) Key() (K, error) {
	e, err := it.current()
	if nil != err {
		var k K
		return k, err
	}
	return e.key, nil
}

// Value - value at the iterator
func (it ConstIterator[K, V]) Value() (V, error) {
	e, err := it.current()
	if nil != err {
		var v V
		return v, err
	}
	return e.value, nil
}

// IsEnd - true if the iterator is past the last pair
func (it ConstIterator[K, V]) IsEnd() bool {
	return it.Equal(it.m.CEnd())
}

// Bucket - bucket index and position within it
func (it ConstIterator[K, V]) Bucket() (int, int) {
	return it.bucket, it.position
}

// Equal - true if both iterators are at the same position of the same map
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.m == other.m && it.bucket == other.bucket && it.position == other.position
}

// Const - the read only view of the iterator
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return it.ConstIterator
}

// Equal - true if both iterators are at the same position of the same map
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.ConstIterator.Equal(other.ConstIterator)
}

// ValuePointer - value slot at the iterator
func (it Iterator[K, V]) ValuePointer() (*V, error) {
	e, err := it.current()
	if nil != err {
		return nil, err
	}
	return &e.value, nil
}

// SetValue - replace the value at the iterator
func (it Iterator[K, V]) SetValue(value V) error {
	e, err := it.current()
	if nil != err {
		return err
	}
	e.value = value
	return nil
}
