// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"hash/maphash"

	"github.com/fxamacker/circlehash"
)

// Hasher - maps a key to a 64 bit hash, equal keys must give equal hashes
type Hasher[K comparable] func(key K) uint64

// ComparableHasher - hash any comparable key with a random seed
func ComparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// StringHasher - hash string keys with circlehash, the result is
// stable across processes for the same seed
func StringHasher(seed uint64) Hasher[string] {
	return func(key string) uint64 {
		return circlehash.Hash64String(key, seed)
	}
}
