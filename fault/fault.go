// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ExistsError("already initialised")
	CheckpointFailed        = ProcessError("ledger checkpoint failed")
	ConfigurationFileAbsent = NotFoundError("configuration file is not found")
	InvalidContentID        = InvalidError("invalid content id")
	InvalidCount            = InvalidError("invalid count")
	InvalidIpAddress        = InvalidError("invalid IP address")
	InvalidLedgerRecord     = RecordError("invalid ledger record")
	InvalidLoggerChannel    = InvalidError("invalid logger channel")
	InvalidPeerID           = InvalidError("invalid peer id")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	LedgerDatabaseNotOpen   = ProcessError("ledger database is not open")
	MissingParameters       = InvalidError("missing parameters")
	MissingPeerID           = InvalidError("missing peer id")
	NotAvailable            = ProcessError("not available while offline")
	RateLimiting            = InvalidError("rate limiting")
	TooManyKeys             = LengthError("too many keys")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
