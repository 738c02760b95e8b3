// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - cursor to the item at a specific index, end if out of range
func (tree *Tree[K, V]) Get(index int) Cursor[K, V] {
	if index < 0 || index >= tree.Count() {
		return tree.End()
	}
	return Cursor[K, V]{tree: tree, node: tree.get(index, tree.root)}
}

func (tree *Tree[K, V]) get(index int, p int) int {
	for none != p {
		pn := tree.nodes.at(p)
		nl := pn.leftNodes
		switch {
		case index < nl:
			p = pn.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = pn.right
		default:
			return p
		}
	}
	return none
}
