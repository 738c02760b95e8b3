// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// state carried down an insertion
type insertion[K, V any] struct {
	key       K
	value     V
	overwrite bool // replace the value of an existing key
	node      int  // the node holding key after insertion
	added     bool // a new node was created
}

// Insert - insert a new node into the tree, or overwrite the value of
// an existing node; returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	in := insertion[K, V]{
		key:       key,
		value:     value,
		overwrite: true,
	}
	tree.insertRoot(&in)
	return in.added
}

// Acquire - find the node for key, creating it with a zero value if
// absent; returns the value slot and true if a node was added
func (tree *Tree[K, V]) Acquire(key K) (*V, bool) {
	in := insertion[K, V]{
		key: key,
	}
	tree.insertRoot(&in)
	return &tree.nodes.at(in.node).value, in.added
}

func (tree *Tree[K, V]) insertRoot(in *insertion[K, V]) {
	tree.root, _ = tree.insert(tree.root, in)
	if in.added {
		tree.count += 1
	}
}

// internal routine for insert
// returns the possibly updated sub-tree root and whether its height grew
func (tree *Tree[K, V]) insert(p int, in *insertion[K, V]) (int, bool) {
	h := false
	if none == p { // insert new node
		p = tree.nodes.allocate(in.key, in.value)
		in.node = p
		in.added = true
		return p, true
	}
	pn := tree.nodes.at(p)
	c := tree.compare(pn.key, in.key)
	switch {
	case c > 0: // pn.key > key
		pn.left, h = tree.insert(pn.left, in)
		if in.added {
			pn.leftNodes += 1
		}
		if h {
			tree.nodes.at(pn.left).up = p

			// left branch has grown
			if 1 == pn.balance {
				pn.balance = 0
				h = false
			} else if 0 == pn.balance {
				pn.balance = -1
			} else { // balance == -1, rebalance
				if -1 == tree.nodes.at(pn.left).balance {
					pn.balance = 0
					p = tree.rotateRight(p)
				} else {
					p = tree.rotateLeftRight(p)
				}
				tree.nodes.at(p).balance = 0
				h = false
			}
		}
	case c < 0: // pn.key < key
		pn.right, h = tree.insert(pn.right, in)
		if in.added {
			pn.rightNodes += 1
		}
		if h {
			tree.nodes.at(pn.right).up = p

			// right branch has grown
			if -1 == pn.balance {
				pn.balance = 0
				h = false
			} else if 0 == pn.balance {
				pn.balance = 1
			} else { // balance == +1, rebalance
				if 1 == tree.nodes.at(pn.right).balance {
					pn.balance = 0
					p = tree.rotateLeft(p)
				} else {
					p = tree.rotateRightLeft(p)
				}
				tree.nodes.at(p).balance = 0
				h = false
			}
		}
	default:
		in.node = p
		if in.overwrite {
			pn.value = in.value
		}
	}
	return p, h
}
