// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/knowledged/fault"
)

// ED25519 - the only supported key algorithm
const ED25519 = 1

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key that identifies the owner of a record
//
// the encoded form (Bytes) is the identity stored with each record
type Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - convert a key variant prefixed public key to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := binary.Uvarint(accountBytes)

	// Check key type
	if keyVariantLength <= 0 || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm != ED25519 {
		return nil, fault.InvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}

	account := &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: append([]byte{}, publicKey...),
	}
	return account, nil
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// Equal - compare two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsTesting - whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
