// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - fingerprint of a DER certificate
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 of a DER encoded certificate
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}

// String - lower case hex
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}

// MarshalText - fingerprint as hex for JSON
func (f FingerprintBytes) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
