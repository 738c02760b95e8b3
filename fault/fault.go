// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrAdvancePastEnd             = InvalidError("cannot advance iterator past end")
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrDereferenceEnd             = InvalidError("cannot dereference end iterator")
	ErrInvalidBucketCount         = InvalidError("bucket count must be positive")
	ErrInvalidConfigurationResult = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidRepeatCount         = InvalidError("repeat count must be positive")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrIteratorAtEnd              = NotFoundError("cannot remove end iterator")
	ErrIteratorMismatch           = InvalidError("iterator belongs to a different map")
	ErrKeyNotFound                = NotFoundError("key not found")
	ErrRegressBeforeBegin         = InvalidError("cannot move iterator before begin")
	ErrTooManyConfigurationFiles  = InvalidError("only one configuration file is allowed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
