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

// common errors - grouped by class
var (
	AlreadyInitialised            = ExistsError("already initialised")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	KeyCollision                  = ExistsError("key collision: record already stored under this key")
	IdentityFileAlreadyExists     = ExistsError("identity file already exists")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	Unauthenticated               = InvalidError("unauthenticated: no verified caller identity")
	Unnamed                       = InvalidError("account is not named")
	CannotDecodeAccount           = InvalidError("cannot decode account")
	CannotDecodePrivateKey        = InvalidError("cannot decode private key")
	CannotDecodeSeed              = InvalidError("cannot decode seed")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	ConfigurationNotTable         = InvalidError("configuration file did not return a table")
	ConfigurationLengthInvalid    = InvalidError("configuration: minimum length exceeds maximum length")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCollisionPolicy        = InvalidError("invalid collision policy")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidIPAddress              = InvalidError("invalid IP address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyPolicy              = InvalidError("invalid key policy")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidSeedHeader             = InvalidError("invalid seed header")
	InvalidSeedLength             = InvalidError("invalid seed length")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	InvalidTimestamp              = InvalidError("request timestamp outside allowed window")
	MissingParameters             = InvalidError("missing parameters")
	NotPublicKey                  = InvalidError("not a public key")
	NotPrivateKey                 = InvalidError("not a private key")
	TestAccountMismatch           = InvalidError("account network does not match chain")
	TooLong                       = LengthError("payload too long")
	TooShort                      = LengthError("payload too short")
	StorageOverflow               = LengthError("storage overflow")
	MissingConnect                = NotFoundError("missing connect address")
	MissingPrivateKey             = NotFoundError("missing private key")
	MissingTable                  = NotFoundError("missing table")
	MissingSequence               = NotFoundError("missing sequence counter")
	MissingSink                   = NotFoundError("missing notification sink")
	NotInitialised                = NotFoundError("not initialised")
	DatabaseIsNotSet              = ProcessError("database handle is not set")
	RateLimiting                  = ProcessError("rate limiting")
	TransactionAlreadyInUse       = ProcessError("transaction already in use")
	RecordHasTrailingData         = RecordError("record has trailing data")
	RecordTruncated               = RecordError("record truncated")
	RecordPayloadLengthOutOfRange = RecordError("record payload length out of range")
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
