// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the networks a node can be configured for
package chain

import (
	"github.com/bitmark-inc/knowledged/fault"
)

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - whether accounts on this chain must carry the test flag
func IsTesting(name string) bool {
	return Bitmark != name
}

// DatabaseName - default database file name for a chain
func DatabaseName(name string) (string, error) {
	if !Valid(name) {
		return "", fault.InvalidChain
	}
	return "knowledge-" + name + ".leveldb", nil
}

// CheckAccount - reject accounts whose test flag does not match the chain
func CheckAccount(name string, testing bool) error {
	if !Valid(name) {
		return fault.InvalidChain
	}
	if IsTesting(name) != testing {
		return fault.TestAccountMismatch
	}
	return nil
}
