// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/maps/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib/mapbench", "log", "/var/lib/mapbench/log"},
		{"/var/lib/mapbench/", "./log/../data", "/var/lib/mapbench/data"},
		{"/var/lib/mapbench", "/tmp/log", "/tmp/log"},
		{"/var/lib/mapbench", "/tmp//log/", "/tmp/log"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path %q", i, item.path)
	}
}
