// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/maps/benchmark"
	"github.com/bitmark-inc/maps/configuration"
	"github.com/bitmark-inc/maps/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [repeat-count]", program)
	}

	if len(arguments) > 1 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	theConfiguration, err := getConfiguration(options["config-file"])
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration error: %s", program, err)
	}

	if 1 == len(arguments) {
		n, err := strconv.Atoi(arguments[0])
		if nil != err || n <= 0 {
			exitwithstatus.Message("%s: repeat count: %q error: %s", program, arguments[0], fault.ErrInvalidRepeatCount)
		}
		theConfiguration.RepeatCount = n
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "debug",
		}
	}

	if err := theConfiguration.CreateLogDirectory(); nil != err {
		exitwithstatus.Message("%s: log directory: %q error: %s", program, theConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	runner, err := benchmark.New(logger.New("benchmark"), theConfiguration.RepeatCount, theConfiguration.BucketCount, benchmark.NewPrintReporter(os.Stdout))
	if nil != err {
		log.Criticalf("benchmark setup error: %s", err)
		exitwithstatus.Message("%s: benchmark setup error: %s", program, err)
	}

	if err = runner.Run(); nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}
}

// read the configuration file if one was given, otherwise use defaults
// relative to the current directory
func getConfiguration(files []string) (*configuration.Benchmark, error) {
	switch len(files) {
	case 0:
		directory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		return configuration.DefaultBenchmark(directory), nil
	case 1:
		return configuration.GetBenchmark(files[0])
	default:
		return nil, fault.ErrTooManyConfigurationFiles
	}
}
