// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - record was already present
	ExistsError GenericError
	// InvalidError - caller supplied bad data, retry with corrected input
	InvalidError GenericError
	// LengthError - data size is incorrect
	LengthError GenericError
	// NotFoundError - referenced record is missing
	NotFoundError GenericError
	// ProcessError - operation failed part way, not caller recoverable
	ProcessError GenericError
	// RecordError - stored record is unreadable
	RecordError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised             = ProcessError("already initialised")
	CannotDecodeWalletAddress      = InvalidError("cannot decode wallet address")
	CryptoFailed                   = ProcessError("crypto library failure")
	DatabaseIsNotSet               = ProcessError("database is not set")
	InvalidCount                   = InvalidError("invalid count")
	InvalidCursor                  = InvalidError("invalid cursor")
	InvalidDatabaseVersion         = ProcessError("invalid database version")
	InvalidLogin                   = InvalidError("invalid login name")
	InvalidOwnerRole               = InvalidError("invalid owner role, want one of: owner admin member")
	InvalidPasswordLength          = LengthError("password length is invalid")
	InvalidPlatform                = InvalidError("invalid platform name")
	InvalidProjectId               = InvalidError("invalid project id")
	InvalidRepositoryName          = InvalidError("invalid repository name, want: owner/name")
	InvalidSalt                    = InvalidError("invalid salt")
	InvalidWalletAddressLength     = LengthError("invalid wallet address length")
	InvalidWalletPublicKeyPrefix   = InvalidError("invalid wallet public key prefix")
	MissingAccessToken             = InvalidError("missing access token")
	NotInitialised                 = ProcessError("not initialised")
	OwnerAlreadyPresent            = ExistsError("owner is already present")
	OwnerNotFound                  = NotFoundError("owner not found")
	PasswordMismatch               = InvalidError("verified password is different")
	ProfileRepositoryNotAccessible = ProcessError("profile repository is not accessible")
	ProjectNotFound                = NotFoundError("project not found")
	ProjectStillInUse              = ProcessError("project still has repositories or owners")
	TransactionAlreadyInProgress   = ProcessError("transaction already in progress")
	WalletAddressChecksumMismatch  = InvalidError("wallet address checksum mismatch")
	WalletAddressNotMainNetwork    = InvalidError("wallet address is not for the main network")
	WalletAddressNotPayToPublicKey = InvalidError("wallet address is not pay-to-public-key")
	WrongPassword                  = InvalidError("wrong password")
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

// IsErrExists - determine if belongs to exists error class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if belongs to invalid error class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine if belongs to length error class
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine if belongs to not found error class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if belongs to process error class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine if belongs to record error class
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
