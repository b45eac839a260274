// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/knowledged/chain"
	"github.com/bitmark-inc/knowledged/fault"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Bitmark, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %s", name)
	}
	assert.False(t, chain.Valid("Bitmark"), "chain names are case sensitive")
	assert.False(t, chain.Valid(""), "empty chain")
}

func TestDatabaseName(t *testing.T) {
	name, err := chain.DatabaseName(chain.Testing)
	assert.Nil(t, err, "testing chain")
	assert.Equal(t, "knowledge-testing.leveldb", name, "database name")

	_, err = chain.DatabaseName("nowhere")
	assert.Equal(t, fault.InvalidChain, err, "unknown chain")
}

func TestCheckAccount(t *testing.T) {
	assert.Nil(t, chain.CheckAccount(chain.Bitmark, false), "live account on live chain")
	assert.Nil(t, chain.CheckAccount(chain.Local, true), "test account on local chain")
	assert.Equal(t, fault.TestAccountMismatch, chain.CheckAccount(chain.Bitmark, true), "test account on live chain")
	assert.Equal(t, fault.TestAccountMismatch, chain.CheckAccount(chain.Testing, false), "live account on test chain")
	assert.Equal(t, fault.InvalidChain, chain.CheckAccount("x", true), "unknown chain")
}
