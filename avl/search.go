// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, returns its cursor and zero based
// index or the end cursor and -1 if the key is not present
func (tree *Tree[K, V]) Search(key K) (Cursor[K, V], int) {
	p, index := tree.search(key, tree.root, 0)
	return Cursor[K, V]{tree: tree, node: p}, index
}

func (tree *Tree[K, V]) search(key K, p int, index int) (int, int) {
	for none != p {
		pn := tree.nodes.at(p)
		c := tree.compare(pn.key, key)
		switch {
		case c > 0: // pn.key > key
			p = pn.left
		case c < 0: // pn.key < key
			index += pn.leftNodes + 1
			p = pn.right
		default:
			return p, index + pn.leftNodes
		}
	}
	return none, -1
}

// Contains - true if key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	p, _ := tree.search(key, tree.root, 0)
	return none != p
}
