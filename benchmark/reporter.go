// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"io"
	"time"
)

// Reporter - receives the result of each run
type Reporter interface {
	Report(name string, elapsed time.Duration)
}

// PrintReporter - writes one line per run to a writer
type PrintReporter struct {
	w io.Writer
}

// NewPrintReporter - create a reporter writing to w
func NewPrintReporter(w io.Writer) *PrintReporter {
	return &PrintReporter{w: w}
}

// Report - output: [ <name> ]<TAB><TAB><microseconds> [µs]
func (p *PrintReporter) Report(name string, elapsed time.Duration) {
	fmt.Fprintf(p.w, "[ %s ]\t\t%d [µs]\n", name, elapsed.Microseconds())
}
