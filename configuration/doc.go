// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a single table, for example:
//
//   return {
//       repeat_count = 10000,
//       bucket_count = 64000,
//       logging = {
//           directory = "log",
//           file = "mapbench.log",
//           levels = { DEFAULT = "info" },
//       },
//   }
package configuration
