// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - time the tree and hash maps
//
// each run builds or walks a map of integer keys and hands the
// elapsed wall clock time to a Reporter.  The runs are, in order:
//
//   TreeMapAddition   insert m[i] = n - i for i in [0, n) into a tree map
//   HashMapAddition   the same insertions into a hash map
//   TreeMapIteration  walk a filled tree map from begin to end
//   HashMapIteration  walk a filled hash map from begin to end
//
// only the insertions or the walk are timed, filling a map before a
// walk is not.
package benchmark
