// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - ed25519 signature over a request message, hex in JSON
type Signature []byte

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - hex encode
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(signature)), nil
}

// UnmarshalText - hex decode, length is only checked on verification
func (signature *Signature) UnmarshalText(s []byte) error {
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*signature = b
	return nil
}
