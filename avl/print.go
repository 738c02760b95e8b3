// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K, V]) printTree(w io.Writer, p int, prefix string, br branch, printData bool) int {
	if none == p {
		return 0
	}
	pn := tree.nodes.at(p)
	rd := 0
	ld := 0
	if none != pn.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, pn.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != pn.up {
		up = tree.nodes.at(pn.up).key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d/[%d,%d]\n", pn.key, pn.value, up, pn.balance, pn.leftNodes, pn.rightNodes)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", pn.key, up)
	}
	if none != pn.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, pn.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
