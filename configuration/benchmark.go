// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/maps/fault"
	"github.com/bitmark-inc/maps/hashmap"
	"github.com/bitmark-inc/maps/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	DefaultRepeatCount = 10000

	defaultLogDirectory = "log"
	defaultLogFile      = "mapbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Benchmark - settings for the map benchmark program
type Benchmark struct {
	RepeatCount int                  `gluamapper:"repeat_count" json:"repeat_count"`
	BucketCount int                  `gluamapper:"bucket_count" json:"bucket_count"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DefaultBenchmark - settings used when no configuration file is given
// the log directory is relative to the directory argument
func DefaultBenchmark(directory string) *Benchmark {

	// fresh copy, parsing writes into the map
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Benchmark{
		RepeatCount: DefaultRepeatCount,
		BucketCount: hashmap.DefaultBucketCount,
		Logging: logger.Configuration{
			Directory: util.EnsureAbsolute(directory, defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetBenchmark - will read decode and verify the configuration
func GetBenchmark(configurationFileName string) (*Benchmark, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := DefaultBenchmark(dataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.RepeatCount <= 0 {
		return nil, fault.ErrInvalidRepeatCount
	}
	if options.BucketCount <= 0 {
		return nil, fault.ErrInvalidBucketCount
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}

// CreateLogDirectory - make sure the log directory exists
func (b *Benchmark) CreateLogDirectory() error {
	return os.MkdirAll(b.Logging.Directory, 0700)
}
