// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	nodes   arena[K, V]
	root    int
	count   int
	compare func(a, b K) int
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative number when a < b, zero when a == b and a
// positive number when a > b
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{
		nodes:   newArena[K, V](),
		root:    none,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree[K, V]) height(p int) int {
	if none == p {
		return 0
	}
	n := tree.nodes.at(p)
	lh := tree.height(n.left)
	rh := tree.height(n.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Clear - remove every node, children before their parent
func (tree *Tree[K, V]) Clear() {
	tree.release(tree.root)
	tree.root = none
	tree.count = 0
}

func (tree *Tree[K, V]) release(p int) {
	if none == p {
		return
	}
	n := tree.nodes.at(p)
	tree.release(n.left)
	tree.release(n.right)
	tree.nodes.free(p)
}

// Compare - the ordering function of the tree
func (tree *Tree[K, V]) Compare(a, b K) int {
	return tree.compare(a, b)
}
