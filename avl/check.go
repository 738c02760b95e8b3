// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return tree.checkup(tree.root, none)
}

// internal: consistency checker
func (tree *Tree[K, V]) checkup(p int, up int) bool {
	if none == p {
		return true
	}
	pn := tree.nodes.at(p)
	if pn.up != up {
		fmt.Printf("fail at node: %v  up actual: %d  expected: %d\n", pn.key, pn.up, up)
		return false
	}
	if !tree.checkup(pn.left, p) {
		return false
	}
	return tree.checkup(pn.right, p)
}

// CheckBalance - check that every node has sub-tree heights differing
// by at most one, and that the stored balance agrees
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := tree.checkBalance(tree.root)
	return ok
}

// internal: returns the height of the sub-tree
func (tree *Tree[K, V]) checkBalance(p int) (int, bool) {
	if none == p {
		return 0, true
	}
	pn := tree.nodes.at(p)
	lh, ok := tree.checkBalance(pn.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkBalance(pn.right)
	if !ok {
		return 0, false
	}
	b := rh - lh
	if b < -1 || b > 1 || int(pn.balance) != b {
		fmt.Printf("fail at node: %v  heights: [%d,%d]  balance: %d\n", pn.key, lh, rh, pn.balance)
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

// CheckCounts - check that the sub-tree node counts are accurate
func (tree *Tree[K, V]) CheckCounts() bool {
	n, ok := tree.checkCounts(tree.root)
	if ok && n != tree.count {
		fmt.Printf("fail at root: nodes: %d  count: %d\n", n, tree.count)
		return false
	}
	if ok && n != tree.nodes.live() {
		fmt.Printf("fail at arena: nodes: %d  live: %d\n", n, tree.nodes.live())
		return false
	}
	return ok
}

// internal: returns the number of nodes in the sub-tree
func (tree *Tree[K, V]) checkCounts(p int) (int, bool) {
	if none == p {
		return 0, true
	}
	pn := tree.nodes.at(p)
	nl, ok := tree.checkCounts(pn.left)
	if !ok {
		return 0, false
	}
	nr, ok := tree.checkCounts(pn.right)
	if !ok {
		return 0, false
	}
	if nl != pn.leftNodes || nr != pn.rightNodes {
		fmt.Printf("fail at node: %v  counts actual: [%d,%d]  expected: [%d,%d]\n", pn.key, pn.leftNodes, pn.rightNodes, nl, nr)
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckOrder - check that keys strictly increase in order
func (tree *Tree[K, V]) CheckOrder() bool {
	p := tree.first(tree.root)
	if none == p {
		return true
	}
	for n := tree.next(p); none != n; p, n = n, tree.next(n) {
		a := tree.nodes.at(p).key
		b := tree.nodes.at(n).key
		if tree.compare(a, b) >= 0 {
			fmt.Printf("fail at node: %v  followed by: %v\n", a, b)
			return false
		}
	}
	return true
}
