// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrCannotDecodeRecord    = RecordError("cannot decode record")
	ErrCertificateExists     = ExistsError("certificate file already exists")
	ErrCorgiNotFound         = NotFoundError("corgi not found")
	ErrCorgiNotListed        = InvalidError("corgi is not listed for sale")
	ErrDelegateNotFound      = NotFoundError("did not find access for escrow account")
	ErrDeleteNotAuthorised   = AccessError("no permission to delete corgi")
	ErrFeeWithoutOwner       = InvalidError("creation fee requires an owner account")
	ErrInsufficientPayment   = InvalidError("payment is below the listing price")
	ErrInvalidAccount        = InvalidError("account identifier is invalid")
	ErrInvalidAmount         = InvalidError("amount is invalid")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidCursor         = InvalidError("cursor is invalid")
	ErrInvalidDigestLength   = InvalidError("digest length is invalid")
	ErrInvalidIpAddress      = InvalidError("invalid IP Address")
	ErrInvalidPayment        = InvalidError("creation payment is wrong")
	ErrInvalidRarity         = InvalidError("rarity is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyFileExists         = ExistsError("key file already exists")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNoDelegation          = NotFoundError("access does not exist")
	ErrNotCorgiOwner         = AccessError("attempt to transfer a corgi belonging to another account")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrOwnerMismatch         = InvalidError("attempt to transfer a corgi from a different owner")
	ErrOwnerNotFound         = NotFoundError("owner account not found")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrSaleNotAuthorised     = AccessError("no permission to sell corgi")
	ErrTransferNotAuthorised = AccessError("attempt to transfer a corgi with no access")
	ErrWrongDatabaseVersion  = ProcessError("database version mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
