// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashmap - a map from unique keys to mutable values held in
// a fixed array of buckets, colliding keys are chained in insertion
// order within their bucket
//
// The number of buckets is fixed when the map is created and never
// changes; there is no rehashing, so long chains are the cost of
// choosing too few buckets.  Iteration order follows bucket index then
// insertion order and is otherwise unspecified.
//
// Note: a map is not thread safe, so either access only in a single go
//       routine or use mutex/rwmutex to restrict access.  Inserting or
//       removing keys invalidates every iterator; value pointers stay
//       valid until their key is removed.
package hashmap
