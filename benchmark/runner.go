// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/maps/fault"
	"github.com/bitmark-inc/maps/hashmap"
	"github.com/bitmark-inc/maps/treemap"
)

// names of the runs
const (
	TreeMapAddition  = "TreeMapAddition"
	HashMapAddition  = "HashMapAddition"
	TreeMapIteration = "TreeMapIteration"
	HashMapIteration = "HashMapIteration"
)

// Runner - holds the parameters shared by all runs
type Runner struct {
	log         *logger.L
	repeatCount int
	bucketCount int
	reporter    Reporter
}

type run struct {
	name string
	f    func() (time.Duration, error)
}

// New - create a runner
func New(log *logger.L, repeatCount int, bucketCount int, reporter Reporter) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if repeatCount <= 0 {
		return nil, fault.ErrInvalidRepeatCount
	}
	if bucketCount <= 0 {
		return nil, fault.ErrInvalidBucketCount
	}
	return &Runner{
		log:         log,
		repeatCount: repeatCount,
		bucketCount: bucketCount,
		reporter:    reporter,
	}, nil
}

// Run - perform every run in order, stops at the first error
func (r *Runner) Run() error {
	runs := []run{
		{TreeMapAddition, r.treeMapAddition},
		{HashMapAddition, r.hashMapAddition},
		{TreeMapIteration, r.treeMapIteration},
		{HashMapIteration, r.hashMapIteration},
	}

	for _, item := range runs {
		r.log.Debugf("start: %s  repeat: %d", item.name, r.repeatCount)
		elapsed, err := item.f()
		if nil != err {
			r.log.Errorf("%s: error: %s", item.name, err)
			return err
		}
		r.log.Infof("%s: elapsed: %s", item.name, elapsed)
		r.reporter.Report(item.name, elapsed)
	}
	return nil
}

func (r *Runner) newHashMap() (*hashmap.Map[int, int], error) {
	return hashmap.NewWithBuckets[int, int](r.bucketCount, nil)
}

func (r *Runner) fillTreeMap(m *treemap.Map[int, int]) {
	for i := 0; i < r.repeatCount; i += 1 {
		*m.Index(i) = r.repeatCount - i
	}
}

func (r *Runner) fillHashMap(m *hashmap.Map[int, int]) {
	for i := 0; i < r.repeatCount; i += 1 {
		*m.Index(i) = r.repeatCount - i
	}
}

func (r *Runner) treeMapAddition() (time.Duration, error) {
	m := treemap.New[int, int]()
	start := time.Now()
	r.fillTreeMap(m)
	elapsed := time.Since(start)
	r.log.Debugf("tree map size: %d", m.Size())
	return elapsed, nil
}

func (r *Runner) hashMapAddition() (time.Duration, error) {
	m, err := r.newHashMap()
	if nil != err {
		return 0, err
	}
	start := time.Now()
	r.fillHashMap(m)
	elapsed := time.Since(start)
	r.log.Debugf("hash map size: %d", m.Size())
	return elapsed, nil
}

func (r *Runner) treeMapIteration() (time.Duration, error) {
	m := treemap.New[int, int]()
	r.fillTreeMap(m)

	sum := 0
	start := time.Now()
	end := m.CEnd()
	for it := m.CBegin(); !it.Equal(end); {
		v, err := it.Value()
		if nil != err {
			return 0, err
		}
		sum += v
		if err := it.Next(); nil != err {
			return 0, err
		}
	}
	elapsed := time.Since(start)
	r.log.Debugf("tree map value sum: %d", sum)
	return elapsed, nil
}

func (r *Runner) hashMapIteration() (time.Duration, error) {
	m, err := r.newHashMap()
	if nil != err {
		return 0, err
	}
	r.fillHashMap(m)

	sum := 0
	start := time.Now()
	end := m.CEnd()
	for it := m.CBegin(); !it.Equal(end); {
		v, err := it.Value()
		if nil != err {
			return 0, err
		}
		sum += v
		if err := it.Next(); nil != err {
			return 0, err
		}
	}
	elapsed := time.Since(start)
	r.log.Debugf("hash map value sum: %d", sum)
	return elapsed, nil
}
