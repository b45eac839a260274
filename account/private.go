// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/knowledged/fault"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair from the random source
func NewPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	// Parse the key variant
	keyVariant, keyVariantLength := binary.Uvarint(privateKeyDecoded)

	// Check key type
	if keyVariantLength <= 0 || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm != ED25519 {
		return nil, fault.InvalidKeyType
	}

	// Compute key length
	keyLength := len(privateKeyDecoded) - keyVariantLength - checksumLength
	if keyLength != ed25519.PrivateKeySize {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	priv := make([]byte, ed25519.PrivateKeySize)
	copy(priv, privateKeyDecoded[keyVariantLength:checksumStart])

	privateKey := &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: priv,
	}
	return privateKey, nil
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert a private key to its Base58 form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 text into a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *p
	return nil
}
