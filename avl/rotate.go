// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the rotations maintain links, parent pointers and node counts; the
// balance factors of single rotations differ between insert and
// delete so are left to the caller

// single LL rotation, returns the new sub-tree root
func (tree *Tree[K, V]) rotateRight(p int) int {
	pn := tree.nodes.at(p)
	p1 := pn.left
	p1n := tree.nodes.at(p1)

	pn.left = p1n.right
	p1n.right = p

	nn := 1 + p1n.rightNodes + pn.rightNodes
	pn.leftNodes = p1n.rightNodes
	p1n.rightNodes = nn

	p1n.up = pn.up
	pn.up = p1
	if none != pn.left {
		tree.nodes.at(pn.left).up = p
	}
	return p1
}

// single RR rotation, returns the new sub-tree root
func (tree *Tree[K, V]) rotateLeft(p int) int {
	pn := tree.nodes.at(p)
	p1 := pn.right
	p1n := tree.nodes.at(p1)

	pn.right = p1n.left
	p1n.left = p

	nn := 1 + pn.leftNodes + p1n.leftNodes
	pn.rightNodes = p1n.leftNodes
	p1n.leftNodes = nn

	p1n.up = pn.up
	pn.up = p1
	if none != pn.right {
		tree.nodes.at(pn.right).up = p
	}
	return p1
}

// double LR rotation, returns the new sub-tree root
func (tree *Tree[K, V]) rotateLeftRight(p int) int {
	pn := tree.nodes.at(p)
	p1 := pn.left
	p1n := tree.nodes.at(p1)
	p2 := p1n.right
	p2n := tree.nodes.at(p2)

	p1n.right = p2n.left
	p2n.left = p1
	pn.left = p2n.right
	p2n.right = p
	if -1 == p2n.balance {
		pn.balance = 1
	} else {
		pn.balance = 0
	}
	if +1 == p2n.balance {
		p1n.balance = -1
	} else {
		p1n.balance = 0
	}
	p2n.balance = 0

	nl := 1 + p1n.leftNodes + p2n.leftNodes
	nr := 1 + p2n.rightNodes + pn.rightNodes

	p1n.rightNodes = p2n.leftNodes
	pn.leftNodes = p2n.rightNodes

	p2n.leftNodes = nl
	p2n.rightNodes = nr

	if none != pn.left {
		tree.nodes.at(pn.left).up = p
	}
	if none != p1n.right {
		tree.nodes.at(p1n.right).up = p1
	}
	p2n.up = pn.up
	pn.up = p2
	p1n.up = p2

	return p2
}

// double RL rotation, returns the new sub-tree root
func (tree *Tree[K, V]) rotateRightLeft(p int) int {
	pn := tree.nodes.at(p)
	p1 := pn.right
	p1n := tree.nodes.at(p1)
	p2 := p1n.left
	p2n := tree.nodes.at(p2)

	p1n.left = p2n.right
	p2n.right = p1
	pn.right = p2n.left
	p2n.left = p
	if +1 == p2n.balance {
		pn.balance = -1
	} else {
		pn.balance = 0
	}
	if -1 == p2n.balance {
		p1n.balance = 1
	} else {
		p1n.balance = 0
	}
	p2n.balance = 0

	nl := 1 + pn.leftNodes + p2n.leftNodes
	nr := 1 + p2n.rightNodes + p1n.rightNodes

	pn.rightNodes = p2n.leftNodes
	p1n.leftNodes = p2n.rightNodes

	p2n.leftNodes = nl
	p2n.rightNodes = nr

	if none != pn.right {
		tree.nodes.at(pn.right).up = p
	}
	if none != p1n.left {
		tree.nodes.at(p1n.left).up = p1
	}
	p2n.up = pn.up
	pn.up = p2
	p1n.up = p2

	return p2
}
