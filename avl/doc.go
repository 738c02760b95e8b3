// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// links to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Nodes are held in an arena and linked by index rather than by
// pointer; freed slots are reused by later insertions.  A node keeps
// its slot for its whole life, so deleting a key with two children
// relinks the in-order successor node instead of copying its data,
// and cursors on other nodes remain usable across a delete.
package avl
