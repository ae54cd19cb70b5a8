// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type DuplicateError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnauthorisedError GenericError
type WindowError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccessMismatch             = InvalidError("access is not open or manual")
	ErrAdminsMissing              = InvalidError("admin set is empty")
	ErrAlreadyInitialised         = ProcessError("already initialised")
	ErrCannotDecodeAccount        = InvalidError("cannot decode account")
	ErrCannotDecodeAddress        = InvalidError("cannot decode address")
	ErrCannotDecodePrivateKey     = InvalidError("cannot decode private key")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrChecksumMismatch           = InvalidError("checksum mismatch")
	ErrConfigurationNotTable      = InvalidError("configuration did not return a table")
	ErrConnectionLimit            = ProcessError("connection limit reached")
	ErrDatabaseVersion            = ProcessError("incompatible database version")
	ErrDuplicateAdmin             = InvalidError("duplicate admin")
	ErrGoalTooSmall               = InvalidError("goal must be greater than zero")
	ErrInvalidAccount             = InvalidError("invalid account")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidIPAddress           = InvalidError("invalid IP Address")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyType             = InvalidError("invalid key type")
	ErrInvalidLoggerChannel       = ProcessError("invalid logger channel")
	ErrInvalidName                = InvalidError("name is not valid UTF-8")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidWindow              = InvalidError("pool start must be before end")
	ErrKeyFileExists              = ExistsError("key file already exists")
	ErrMissingCountersignature    = InvalidError("authority countersignature is required")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrMissingPayer               = InvalidError("payer is required")
	ErrNameTooLong                = InvalidError("name too long")
	ErrNameTooShort               = InvalidError("name too short")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrNotPoolAdmin               = UnauthorisedError("authority is not a pool admin")
	ErrNotPublicKey               = InvalidError("not a public key")
	ErrNotRecordPack              = InvalidError("not a record pack")
	ErrPoolEnded                  = WindowError("pool has ended")
	ErrPoolFull                   = CapacityError("pool has no free project shares")
	ErrPoolNotFound               = NotFoundError("pool not found")
	ErrPoolNotStarted             = WindowError("pool has not started")
	ErrProjectAlreadyJoined       = DuplicateError("project already joined pool")
	ErrProjectNotFound            = NotFoundError("project not found")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrReadOnly                   = ProcessError("not available in read-only mode")
	ErrRecordAlreadyExists        = ExistsError("record already exists")
	ErrRecordNotFound             = NotFoundError("record not found")
	ErrRecordTooLarge             = InvalidError("record exceeds storage space")
	ErrSeedTooLong                = InvalidError("address seed too long")
	ErrSourceAmountTooSmall       = InvalidError("amount must be greater than zero")
	ErrSourceNotFound             = NotFoundError("source not found")
	ErrTooManyAdmins              = InvalidError("too many admins")
	ErrTooManySeeds               = InvalidError("too many address seeds")
	ErrTransactionFinished        = ProcessError("storage transaction already finished")
	ErrUnexpectedCountersignature = InvalidError("countersignature without authority")
	ErrWrongNetworkForPublicKey   = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string     { return string(e) }
func (e DuplicateError) Error() string    { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }
func (e WindowError) Error() string       { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool     { _, ok := e.(CapacityError); return ok }
func IsErrDuplicate(e error) bool    { _, ok := e.(DuplicateError); return ok }
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorised(e error) bool { _, ok := e.(UnauthorisedError); return ok }
func IsErrWindow(e error) bool       { _, ok := e.(WindowError); return ok }

// IsPermanent - true if repeating the identical request can never succeed
//
// a pool that has not started will accept the same join later, and
// process errors come from the host rather than from the request
func IsPermanent(e error) bool {
	if nil == e {
		return false
	}
	if e == ErrPoolNotStarted || IsErrProcess(e) {
		return false
	}
	return true
}
