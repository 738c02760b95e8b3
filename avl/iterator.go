// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/maps/fault"
)

// Cursor - a position in a tree: either a node or the end
//
// a cursor stays valid while its node remains in the tree, any other
// use after the node is deleted is undefined
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	node int
}

// First - cursor at the node with the lowest key value, end if the
// tree is empty
func (tree *Tree[K, V]) First() Cursor[K, V] {
	return Cursor[K, V]{tree: tree, node: tree.first(tree.root)}
}

// Last - cursor at the node with the highest key value, end if the
// tree is empty
func (tree *Tree[K, V]) Last() Cursor[K, V] {
	return Cursor[K, V]{tree: tree, node: tree.last(tree.root)}
}

// End - cursor one past the highest key value
func (tree *Tree[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{tree: tree, node: none}
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(p int) int {
	if none == p {
		return none
	}
	for l := tree.nodes.at(p).left; none != l; l = tree.nodes.at(p).left {
		p = l
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(p int) int {
	if none == p {
		return none
	}
	for r := tree.nodes.at(p).right; none != r; r = tree.nodes.at(p).right {
		p = r
	}
	return p
}

// internal: in-order successor, none after the highest node
func (tree *Tree[K, V]) next(p int) int {
	pn := tree.nodes.at(p)
	if none != pn.right {
		return tree.first(pn.right)
	}
	for {
		up := pn.up
		if none == up {
			return none
		}
		un := tree.nodes.at(up)
		if un.left == p { // arrived from the left
			return up
		}
		p = up
		pn = un
	}
}

// internal: in-order predecessor, none before the lowest node
func (tree *Tree[K, V]) prev(p int) int {
	pn := tree.nodes.at(p)
	if none != pn.left {
		return tree.last(pn.left)
	}
	for {
		up := pn.up
		if none == up {
			return none
		}
		un := tree.nodes.at(up)
		if un.right == p { // arrived from the right
			return up
		}
		p = up
		pn = un
	}
}

// IsEnd - true if the cursor is past the highest node
func (c Cursor[K, V]) IsEnd() bool {
	return none == c.node
}

// Equal - true if both cursors are at the same position of the same tree
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.tree == other.tree && c.node == other.node
}

// Next - move to the node with the next highest key value, or to the
// end after the highest node
func (c *Cursor[K, V]) Next() error {
	if none == c.node {
		return fault.ErrAdvancePastEnd
	}
	c.node = c.tree.next(c.node)
	return nil
}

// Prev - move to the node with the next lowest key value; from the end
// this is the highest node
func (c *Cursor[K, V]) Prev() error {
	if none == c.node {
		last := c.tree.last(c.tree.root)
		if none == last {
			return fault.ErrRegressBeforeBegin
		}
		c.node = last
		return nil
	}
	p := c.tree.prev(c.node)
	if none == p {
		return fault.ErrRegressBeforeBegin
	}
	c.node = p
	return nil
}

// Key - read the key from a node item
func (c Cursor[K, V]) Key() (K, error) {
	if none == c.node {
		var k K
		return k, fault.ErrDereferenceEnd
	}
	return c.tree.nodes.at(c.node).key, nil
}

// Value - read the value from a node item
func (c Cursor[K, V]) Value() (V, error) {
	if none == c.node {
		var v V
		return v, fault.ErrDereferenceEnd
	}
	return c.tree.nodes.at(c.node).value, nil
}

// ValuePointer - the value slot of a node item, for modification
func (c Cursor[K, V]) ValuePointer() (*V, error) {
	if none == c.node {
		return nil, fault.ErrDereferenceEnd
	}
	return &c.tree.nodes.at(c.node).value, nil
}

// Depth - number of links between the node and the root, zero at the end
func (c Cursor[K, V]) Depth() int {
	depth := 0
	if none == c.node {
		return depth
	}
	for up := c.tree.nodes.at(c.node).up; none != up; up = c.tree.nodes.at(up).up {
		depth += 1
	}
	return depth
}

// Tree - the tree the cursor moves in
func (c Cursor[K, V]) Tree() *Tree[K, V] {
	return c.tree
}
