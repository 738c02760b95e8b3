// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/maps/avl"
	"github.com/bitmark-inc/maps/fault"
)

func keys[K, V any](t *testing.T, tree *avl.Tree[K, V]) []K {
	t.Helper()
	result := make([]K, 0, tree.Count())
	for c := tree.First(); !c.IsEnd(); _ = c.Next() {
		k, err := c.Key()
		assert.Nil(t, err, "key")
		result = append(result, k)
	}
	return result
}

func TestSevenKeysDeleteTwoChildRoot(t *testing.T) {
	tree := avl.New[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, k*10)
	}
	assert.Equal(t, 7, tree.Count(), "count")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys(t, tree), "in order")
	assert.True(t, tree.CheckBalance(), "balance")

	v, err := tree.Delete(5)
	assert.Nil(t, err, "delete")
	assert.Equal(t, 50, v, "deleted value")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, keys(t, tree), "in order after delete")
	assert.Equal(t, 6, tree.Count(), "count after delete")
	assert.True(t, tree.CheckUp(), "up links")
	assert.True(t, tree.CheckBalance(), "balance")
	assert.True(t, tree.CheckCounts(), "counts")

	// the successor took the place of the deleted root
	root := tree.Get(3)
	assert.Equal(t, 0, root.Depth(), "successor depth")
	k, _ := root.Key()
	assert.Equal(t, 7, k, "successor key")
}

func TestDeleteMissing(t *testing.T) {
	tree := avl.New[int, string]()
	_, err := tree.Delete(1)
	assert.Equal(t, fault.ErrKeyNotFound, err, "empty tree")

	tree.Insert(2, "two")
	_, err = tree.Delete(1)
	assert.True(t, fault.IsErrNotFound(err), "absent key")
	assert.Equal(t, 1, tree.Count(), "count unchanged")
}

func TestCursorBoundaries(t *testing.T) {
	tree := avl.New[int, string]()

	// empty: begin is end
	c := tree.First()
	assert.True(t, c.Equal(tree.End()), "empty begin")
	_, err := c.Key()
	assert.Equal(t, fault.ErrDereferenceEnd, err, "key at end")
	_, err = c.Value()
	assert.Equal(t, fault.ErrDereferenceEnd, err, "value at end")
	_, err = c.ValuePointer()
	assert.Equal(t, fault.ErrDereferenceEnd, err, "pointer at end")
	assert.Equal(t, fault.ErrAdvancePastEnd, c.Next(), "next at end")
	assert.Equal(t, fault.ErrRegressBeforeBegin, c.Prev(), "prev in empty tree")

	tree.Insert(1, "one")
	tree.Insert(2, "two")

	c = tree.First()
	assert.Equal(t, fault.ErrRegressBeforeBegin, c.Prev(), "prev at begin")
	k, _ := c.Key()
	assert.Equal(t, 1, k, "cursor unchanged by failed prev")

	e := tree.End()
	assert.Nil(t, e.Prev(), "prev from end")
	k, _ = e.Key()
	assert.Equal(t, 2, k, "last from end")
	assert.Nil(t, e.Next(), "next to end")
	assert.True(t, e.IsEnd(), "back at end")
	assert.Equal(t, fault.ErrAdvancePastEnd, e.Next(), "past end")

	// cursors of different trees never compare equal
	other := avl.New[int, string]()
	assert.False(t, tree.End().Equal(other.End()), "different trees")
}

func TestAcquire(t *testing.T) {
	tree := avl.New[string, int]()

	p, added := tree.Acquire("a")
	assert.True(t, added, "first acquire adds")
	assert.Equal(t, 0, *p, "zero value")
	*p = 7

	q, added := tree.Acquire("a")
	assert.False(t, added, "second acquire finds")
	assert.Equal(t, p, q, "same slot")
	assert.Equal(t, 1, tree.Count(), "count")

	c, index := tree.Search("a")
	v, _ := c.Value()
	assert.Equal(t, 7, v, "written through pointer")
	assert.Equal(t, 0, index, "index")
	assert.True(t, tree.Contains("a"), "contains")
	assert.False(t, tree.Contains("b"), "does not contain")
}

func TestCompareFunction(t *testing.T) {
	tree := avl.NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(b), strings.ToLower(a))
	})
	for i, k := range []string{"b", "A", "c", "B", "d"} {
		tree.Insert(k, i)
	}
	assert.Equal(t, []string{"d", "c", "b", "A"}, keys(t, tree), "descending, case folded")
	c, _ := tree.Search("b")
	v, _ := c.Value()
	assert.Equal(t, 3, v, "case folded key overwritten")
}

func TestHeightIsLogarithmic(t *testing.T) {
	const n = 1 << 12
	tree := avl.New[int, struct{}]()
	for i := 0; i < n; i += 1 {
		tree.Insert(i, struct{}{})
	}
	limit := int(1.4405*math.Log2(n+2) - 0.3277)
	assert.LessOrEqual(t, tree.Height(), limit, "ascending insert height")
	assert.True(t, tree.CheckBalance(), "balance")

	for i := 0; i < n; i += 3 {
		_, err := tree.Delete(i)
		assert.Nil(t, err, "delete")
	}
	assert.True(t, tree.CheckBalance(), "balance after delete")
	assert.True(t, tree.CheckCounts(), "counts after delete")
	assert.LessOrEqual(t, tree.Height(), limit, "height after delete")
}

func TestClearReusesNodes(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 0; i < 100; i += 1 {
		tree.Insert(i, i)
	}
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "empty after clear")
	assert.Equal(t, 0, tree.Count(), "count after clear")
	assert.True(t, tree.First().IsEnd(), "no first after clear")

	for i := 100; i > 0; i -= 1 {
		tree.Insert(i, -i)
	}
	assert.Equal(t, 100, tree.Count(), "count after refill")
	assert.True(t, tree.CheckCounts(), "counts after refill")
	assert.True(t, tree.CheckUp(), "up links after refill")
	assert.True(t, tree.CheckOrder(), "order after refill")
}
