// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treemap - an ordered map from unique keys to mutable values
// held in an AVL tree
//
// Iteration from Begin to End visits keys in increasing order.
//
// Note: a map is not thread safe, so either access only in a single go
//       routine or use mutex/rwmutex to restrict access.  Inserting
//       or removing keys invalidates iterators positioned on removed
//       keys; iterators on other keys and value pointers of keys still
//       present remain usable.
package treemap
