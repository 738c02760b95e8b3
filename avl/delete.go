// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/maps/fault"
)

// delete: tree balancer, left branch has shrunk
// returns the new sub-tree root and whether its height shrank
func (tree *Tree[K, V]) balanceLeft(p int) (int, bool) {
	h := true
	pn := tree.nodes.at(p)
	if -1 == pn.balance {
		pn.balance = 0
	} else if 0 == pn.balance {
		pn.balance = 1
		h = false
	} else { // balance = 1, rebalance
		p1n := tree.nodes.at(pn.right)
		if p1n.balance >= 0 {
			if 0 == p1n.balance {
				pn.balance = 1
				p1n.balance = -1
				h = false
			} else {
				pn.balance = 0
				p1n.balance = 0
			}
			p = tree.rotateLeft(p)
		} else {
			p = tree.rotateRightLeft(p)
		}
	}
	return p, h
}

// delete: tree balancer, right branch has shrunk
// returns the new sub-tree root and whether its height shrank
func (tree *Tree[K, V]) balanceRight(p int) (int, bool) {
	h := true
	pn := tree.nodes.at(p)
	if 1 == pn.balance {
		pn.balance = 0
	} else if 0 == pn.balance {
		pn.balance = -1
		h = false
	} else { // balance = -1, rebalance
		p1n := tree.nodes.at(pn.left)
		if p1n.balance <= 0 {
			if 0 == p1n.balance {
				pn.balance = -1
				p1n.balance = 1
				h = false
			} else {
				pn.balance = 0
				p1n.balance = 0
			}
			p = tree.rotateRight(p)
		} else {
			p = tree.rotateLeftRight(p)
		}
	}
	return p, h
}

// delete: unlink the lowest node of a sub-tree
// returns the new sub-tree root, the detached node and whether the
// height shrank
func (tree *Tree[K, V]) detachFirst(p int) (int, int, bool) {
	pn := tree.nodes.at(p)
	if none == pn.left {
		r := pn.right
		if none != r {
			tree.nodes.at(r).up = pn.up
		}
		return r, p, true
	}
	first := none
	h := false
	pn.left, first, h = tree.detachFirst(pn.left)
	pn.leftNodes -= 1
	if h {
		p, h = tree.balanceLeft(p)
	}
	return p, first, h
}

// delete: move the in-order successor of q into q's position
// returns the new sub-tree root and whether the height shrank
func (tree *Tree[K, V]) replaceWithSuccessor(q int) (int, bool) {
	qn := tree.nodes.at(q)
	right, s, h := tree.detachFirst(qn.right)

	sn := tree.nodes.at(s)
	sn.left = qn.left
	sn.right = right
	sn.up = qn.up
	sn.balance = qn.balance
	sn.leftNodes = qn.leftNodes
	sn.rightNodes = qn.rightNodes - 1

	tree.nodes.at(sn.left).up = s
	if none != sn.right {
		tree.nodes.at(sn.right).up = s
	}

	if h {
		return tree.balanceRight(s)
	}
	return s, false
}

// state carried down a deletion
type deletion[V any] struct {
	value   V
	removed bool
}

// Delete - removes a specific item from the tree and returns its value
func (tree *Tree[K, V]) Delete(key K) (V, error) {
	d := deletion[V]{}
	tree.root, _ = tree.delete(key, tree.root, &d)
	if !d.removed {
		return d.value, fault.ErrKeyNotFound
	}
	tree.count -= 1
	return d.value, nil
}

// internal delete routine
// returns the possibly updated sub-tree root and whether its height shrank
func (tree *Tree[K, V]) delete(key K, p int, d *deletion[V]) (int, bool) {
	h := false
	if none == p { // key not in tree
		return p, h
	}
	pn := tree.nodes.at(p)
	c := tree.compare(pn.key, key)
	switch {
	case c > 0: // pn.key > key
		pn.left, h = tree.delete(key, pn.left, d)
		if d.removed {
			pn.leftNodes -= 1
		}
		if h {
			p, h = tree.balanceLeft(p)
		}
	case c < 0: // pn.key < key
		pn.right, h = tree.delete(key, pn.right, d)
		if d.removed {
			pn.rightNodes -= 1
		}
		if h {
			p, h = tree.balanceRight(p)
		}
	default: // found: delete p
		q := p
		d.value = pn.value // preserve the value part
		if none == pn.right {
			if none != pn.left {
				tree.nodes.at(pn.left).up = pn.up
			}
			p = pn.left
			h = true
		} else if none == pn.left {
			tree.nodes.at(pn.right).up = pn.up
			p = pn.right
			h = true
		} else {
			p, h = tree.replaceWithSuccessor(q)
		}
		tree.nodes.free(q) // return deleted node to pool
		d.removed = true   // indicate that an item was removed
	}
	return p, h
}
