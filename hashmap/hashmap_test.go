// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/maps/fault"
	"github.com/bitmark-inc/maps/hashmap"
)

// identity hash so tests can place keys in known buckets
func identity(k int) uint64 {
	return uint64(k)
}

func smallMap(t *testing.T, buckets int) *hashmap.Map[int, string] {
	t.Helper()
	m, err := hashmap.NewWithBuckets[int, string](buckets, identity)
	if nil != err {
		t.Fatalf("new map error: %s", err)
	}
	return m
}

func TestInvalidBucketCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		m, err := hashmap.NewWithBuckets[int, int](n, nil)
		assert.Nil(t, m, "map")
		assert.Equal(t, fault.ErrInvalidBucketCount, err, "error")
	}
	m, err := hashmap.NewWithBuckets[int, int](3, nil)
	assert.Nil(t, err, "nil hasher selects default")
	*m.Index(10) = 1
	v, _ := m.ValueOf(10)
	assert.Equal(t, 1, v, "value")
}

func TestEmpty(t *testing.T) {
	m := hashmap.New[string, int]()
	assert.True(t, m.IsEmpty(), "empty")
	assert.Equal(t, 0, m.Size(), "size")
	assert.Equal(t, hashmap.DefaultBucketCount, m.BucketCount(), "bucket count")
	assert.True(t, m.Begin().Equal(m.End()), "begin is end")
	assert.True(t, m.Find("x").Equal(m.End()), "find")

	_, err := m.ValueOf("x")
	assert.Equal(t, fault.ErrKeyNotFound, err, "value of")
	_, err = m.ValuePointer("x")
	assert.Equal(t, fault.ErrKeyNotFound, err, "value pointer")
	assert.Equal(t, fault.ErrKeyNotFound, m.Remove("x"), "remove")
	assert.Equal(t, fault.ErrIteratorAtEnd, m.RemoveAt(m.CEnd()), "remove end")
}

func TestCollisions(t *testing.T) {
	m := smallMap(t, 4)
	*m.Index(1) = "one"
	*m.Index(5) = "five"
	*m.Index(9) = "nine"
	assert.Equal(t, 3, m.BucketLength(1), "all in one bucket")

	for k, expected := range map[int]string{1: "one", 5: "five", 9: "nine"} {
		v, err := m.ValueOf(k)
		assert.Nil(t, err, "value of %d", k)
		assert.Equal(t, expected, v, "value of %d", k)
	}

	assert.Nil(t, m.Remove(5), "remove middle of chain")
	assert.Equal(t, 2, m.BucketLength(1), "chain shortened")
	v, _ := m.ValueOf(1)
	assert.Equal(t, "one", v, "neighbour before")
	v, _ = m.ValueOf(9)
	assert.Equal(t, "nine", v, "neighbour after")
	_, err := m.ValueOf(5)
	assert.True(t, fault.IsErrNotFound(err), "removed key")

	// a key hashing to the same bucket but absent
	_, err = m.ValueOf(13)
	assert.Equal(t, fault.ErrKeyNotFound, err, "absent colliding key")
}

func TestConstantHasher(t *testing.T) {
	m, err := hashmap.NewWithBuckets[string, int](8, func(string) uint64 { return 3 })
	assert.Nil(t, err, "new")
	for i, k := range []string{"a", "b", "c", "d"} {
		*m.Index(k) = i
	}
	keys := []string{}
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys, "insertion order within bucket")
}

func TestUniqueness(t *testing.T) {
	m := hashmap.New[int, int]()
	distinct := make(map[int]struct{})
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i += 1 {
		k := r.Intn(3000)
		distinct[k] = struct{}{}
		*m.Index(k) += 1
	}
	assert.Equal(t, len(distinct), m.Size(), "size is distinct keys")

	seen := make(map[int]struct{})
	n := 0
	for it := m.CBegin(); !it.Equal(m.CEnd()); _ = it.Next() {
		k, err := it.Key()
		assert.Nil(t, err, "key")
		if _, ok := seen[k]; ok {
			t.Fatalf("key: %d visited twice", k)
		}
		seen[k] = struct{}{}
		n += 1
	}
	assert.Equal(t, m.Size(), n, "visited every entry")
}

func TestUpsertIdempotence(t *testing.T) {
	m := hashmap.New[string, string]()
	*m.Index("k") = "v"
	size := m.Size()
	*m.Index("k") = "v"
	assert.Equal(t, size, m.Size(), "size unchanged")
	v, err := m.ValueOf("k")
	assert.Nil(t, err, "value of")
	assert.Equal(t, "v", v, "value")

	p, _ := m.ValuePointer("k")
	*p = "w"
	v, _ = m.ValueOf("k")
	assert.Equal(t, "w", v, "written through pointer")
}

func TestValuePointerStability(t *testing.T) {
	m := smallMap(t, 2)
	p := m.Index(0)
	*p = "zero"
	for k := 2; k < 200; k += 2 {
		*m.Index(k) = "filler"
	}
	q, _ := m.ValuePointer(0)
	assert.Equal(t, p, q, "slot kept across bucket growth")
	assert.Equal(t, "zero", *q, "value")
}

func TestRoundTripRemoval(t *testing.T) {
	m := hashmap.NewFromPairs(
		hashmap.Pair[int, string]{1, "one"},
		hashmap.Pair[int, string]{2, "two"},
	)
	before := m.Size()
	*m.Index(3) = "three"
	assert.Nil(t, m.Remove(3), "remove")
	assert.Equal(t, before, m.Size(), "size restored")
	assert.True(t, m.Find(3).Equal(m.End()), "find after remove")
}

func TestNewFromPairsLaterOverwrites(t *testing.T) {
	m := hashmap.NewFromPairs(
		hashmap.Pair[string, int]{"a", 1},
		hashmap.Pair[string, int]{"a", 2},
	)
	assert.Equal(t, 1, m.Size(), "size")
	v, _ := m.ValueOf("a")
	assert.Equal(t, 2, v, "later value wins")
}

func TestEquality(t *testing.T) {
	a := hashmap.New[int, string]()
	b := smallMap(t, 3)
	for _, k := range []int{1, 2, 3, 4, 5} {
		*a.Index(k) = "v"
	}
	for _, k := range []int{5, 4, 3, 2, 1} {
		*b.Index(k) = "v"
	}
	assert.True(t, hashmap.Equal(a, b), "same pairs, different order and layout")

	*b.Index(2) = "x"
	assert.False(t, hashmap.Equal(a, b), "one differing value")
	*b.Index(2) = "v"

	assert.Nil(t, b.Remove(1), "remove")
	*b.Index(6) = "v"
	assert.False(t, hashmap.Equal(a, b), "different key")

	assert.Nil(t, b.Remove(6), "remove")
	assert.False(t, hashmap.Equal(a, b), "different size")

	lengths := hashmap.New[int, int]()
	for k := 1; k <= 5; k += 1 {
		*lengths.Index(k) = 1
	}
	assert.True(t, hashmap.EqualFunc(lengths, a, func(n int, s string) bool {
		return n == len(s)
	}), "equal by function")
}

func TestCopyAndMove(t *testing.T) {
	src := smallMap(t, 5)
	*src.Index(1) = "a"
	*src.Index(6) = "b"

	c := src.Clone()
	assert.True(t, hashmap.Equal(src, c), "clone equal")
	assert.Equal(t, 5, c.BucketCount(), "clone bucket count")
	*c.Index(1) = "changed"
	v, _ := src.ValueOf(1)
	assert.Equal(t, "a", v, "clone shares nothing")

	dst := hashmap.New[int, string]()
	*dst.Index(100) = "old"
	dst.CopyFrom(src)
	assert.True(t, hashmap.Equal(src, dst), "copy assignment")
	dst.CopyFrom(dst)
	assert.Equal(t, 2, dst.Size(), "self copy is a no-op")

	moved := src.Move()
	assert.Equal(t, 2, moved.Size(), "moved size")
	assert.True(t, src.IsEmpty(), "source reset")
	assert.Equal(t, 5, src.BucketCount(), "source keeps bucket count")
	*src.Index(2) = "reuse"
	assert.Equal(t, 1, src.Size(), "source usable after move")

	target := hashmap.New[int, string]()
	target.MoveFrom(moved)
	assert.Equal(t, 2, target.Size(), "move assignment")
	assert.True(t, moved.IsEmpty(), "move source reset")
	target.MoveFrom(target)
	assert.Equal(t, 2, target.Size(), "self move is a no-op")
}

func TestClear(t *testing.T) {
	m := smallMap(t, 16)
	for i := 0; i < 40; i += 1 {
		*m.Index(i) = "x"
	}
	m.Clear()
	assert.True(t, m.IsEmpty(), "cleared")
	assert.True(t, m.Begin().Equal(m.End()), "begin is end")
	for b := 0; b < m.BucketCount(); b += 1 {
		assert.Equal(t, 0, m.BucketLength(b), "bucket %d", b)
	}
}

func TestStringHasher(t *testing.T) {
	h := hashmap.StringHasher(0x5eed)
	assert.Equal(t, h("bitmark"), h("bitmark"), "stable")
	assert.NotEqual(t, h("bitmark"), h("bitmarkd"), "distinct")

	m, err := hashmap.NewWithBuckets[string, int](97, h)
	assert.Nil(t, err, "new")
	*m.Index("bitmark") = 1
	v, _ := m.ValueOf("bitmark")
	assert.Equal(t, 1, v, "value")
}
