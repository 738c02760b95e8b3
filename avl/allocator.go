// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/maps/fault"
)

// index of an absent node
const none = -1

// nodes are allocated in pages so that a node never moves once
// created, value pointers stay valid until the node is freed
const (
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// a node in the tree
type node[K, V any] struct {
	left       int  // left sub-tree
	right      int  // right sub-tree
	up         int  // points to parent node, free list link when unused
	key        K    // key part for ordering
	value      V    // value part for data storage
	balance    int8 // -1, 0, +1  (right height - left height)
	leftNodes  int  // count of nodes in left sub-tree
	rightNodes int  // count of nodes in right sub-tree
}

// arena of nodes addressed by index
type arena[K, V any] struct {
	pages      [][]node[K, V]
	totalNodes int // total slots created
	pool       int // head of the list of reclaimed slots
	freeNodes  int // number of slots in the pool
}

func newArena[K, V any]() arena[K, V] {
	return arena[K, V]{
		pool: none,
	}
}

// resolve an index to its node
func (a *arena[K, V]) at(i int) *node[K, V] {
	return &a.pages[i>>pageBits][i&pageMask]
}

// allocate a new node, reuses reclaimed slots if any are available
func (a *arena[K, V]) allocate(key K, value V) int {
	if none == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("arena corrupt: empty pool with %d free nodes", a.freeNodes)
		}
		i := a.totalNodes
		if i>>pageBits == len(a.pages) {
			a.pages = append(a.pages, make([]node[K, V], pageSize))
		}
		a.totalNodes += 1
		p := a.at(i)
		*p = node[K, V]{
			left:  none,
			right: none,
			up:    none,
			key:   key,
			value: value,
		}
		return i
	}
	i := a.pool
	p := a.at(i)
	a.pool = p.up
	*p = node[K, V]{
		left:  none,
		right: none,
		up:    none, // ensure freelist link is cleared
		key:   key,
		value: value,
	}
	a.freeNodes -= 1
	return i
}

// reclaim a node and keep it in the pool
func (a *arena[K, V]) free(i int) {
	p := a.at(i)
	*p = node[K, V]{
		left:  none,
		right: none,
		up:    a.pool, // use as free list link
	}
	a.freeNodes += 1
	a.pool = i
}

// number of slots holding live nodes
func (a *arena[K, V]) live() int {
	return a.totalNodes - a.freeNodes
}
