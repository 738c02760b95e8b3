// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"github.com/bitmark-inc/maps/fault"
)

// DefaultBucketCount - number of buckets used by New
const DefaultBucketCount = 64000

// Pair - a key and its value, used to construct a map
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// one key/value item of a bucket
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map - chained hash map
type Map[K comparable, V any] struct {
	buckets [][]*entry[K, V]
	size    int
	low     int // lowest non-empty bucket, zero when empty
	high    int // highest non-empty bucket, zero when empty
	hash    Hasher[K]
}

// New - create an empty map with the default number of buckets
func New[K comparable, V any]() *Map[K, V] {
	return newMap[K, V](DefaultBucketCount, ComparableHasher[K]())
}

// NewWithBuckets - create an empty map with a specific number of
// buckets and hash function; a nil hash selects ComparableHasher
func NewWithBuckets[K comparable, V any](bucketCount int, hash Hasher[K]) (*Map[K, V], error) {
	if bucketCount <= 0 {
		return nil, fault.ErrInvalidBucketCount
	}
	if nil == hash {
		hash = ComparableHasher[K]()
	}
	return newMap[K, V](bucketCount, hash), nil
}

// NewFromPairs - create a map holding pairs, a later pair overwrites
// the value of an earlier pair with the same key
func NewFromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		*m.Index(p.Key) = p.Value
	}
	return m
}

func newMap[K comparable, V any](bucketCount int, hash Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([][]*entry[K, V], bucketCount),
		hash:    hash,
	}
}

// Clone - a new map with a copy of every pair, sharing nothing with m
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := newMap[K, V](len(m.buckets), m.hash)
	c.copyPairs(m)
	return c
}

// CopyFrom - replace the contents of m by a copy of the pairs of
// other, m takes the bucket count and hash function of other
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	*m = *newMap[K, V](len(other.buckets), other.hash)
	m.copyPairs(other)
}

func (m *Map[K, V]) copyPairs(other *Map[K, V]) {
	for b := other.low; b <= other.high; b += 1 {
		for _, e := range other.buckets[b] {
			*m.Index(e.key) = e.value
		}
	}
}

// Move - a new map that takes over the storage of m, leaving m empty
func (m *Map[K, V]) Move() *Map[K, V] {
	moved := *m
	m.reset()
	return &moved
}

// MoveFrom - discard the contents of m and take over the storage of
// other, leaving other empty
func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	*m = *other
	other.reset()
}

// replace the storage by an empty bucket array of the same size
func (m *Map[K, V]) reset() {
	m.buckets = make([][]*entry[K, V], len(m.buckets))
	m.size = 0
	m.low = 0
	m.high = 0
}

// Clear - remove every pair
func (m *Map[K, V]) Clear() {
	for b := m.low; b <= m.high; b += 1 {
		m.buckets[b] = nil
	}
	m.size = 0
	m.low = 0
	m.high = 0
}

// IsEmpty - true if the map holds no pairs
func (m *Map[K, V]) IsEmpty() bool {
	return 0 == m.size
}

// Size - number of pairs in the map
func (m *Map[K, V]) Size() int {
	return m.size
}

// BucketCount - number of buckets, fixed for the life of the map
func (m *Map[K, V]) BucketCount() int {
	return len(m.buckets)
}

// BucketLength - number of pairs chained in a bucket
func (m *Map[K, V]) BucketLength(bucket int) int {
	if bucket < 0 || bucket >= len(m.buckets) {
		return 0
	}
	return len(m.buckets[bucket])
}
