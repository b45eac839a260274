// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - a batch of writes that reaches the database as a unit
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionData - Transaction over a single Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start a batch
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value pair
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - stage a key/uint64 pair
func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Get - read through the staged writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read a uint64 through the staged writes
func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check a key through the staged writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// InUse - a batch has been started
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write everything staged since Begin
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything staged since Begin
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// serialises Update callers so they queue rather than fail
var updateLock sync.Mutex

// Update - run f inside a transaction and commit it
//
// concurrent callers wait for each other, the batch is discarded if f
// returns an error
func Update(f func(trx Transaction) error) error {
	updateLock.Lock()
	defer updateLock.Unlock()

	trx, err := NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
