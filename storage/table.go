// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/knowledged/fault"
)

// Table - a single pool presented as a plain key/value mapping
//
// every Put is its own batch so a write is either fully applied or
// not applied at all
type Table struct {
	pool *PoolHandle
}

// NewTable - wrap a pool
func NewTable(pool *PoolHandle) *Table {
	return &Table{
		pool: pool,
	}
}

// Get - fetch a copy of the value stored under key
func (t *Table) Get(key []byte) ([]byte, bool, error) {
	if nil == t.pool {
		return nil, false, fault.DatabaseIsNotSet
	}
	value := t.pool.Get(key)
	if nil == value {
		return nil, false, nil
	}
	return append([]byte{}, value...), true, nil
}

// Put - insert or overwrite the value stored under key
func (t *Table) Put(key []byte, value []byte) error {
	if nil == t.pool {
		return fault.DatabaseIsNotSet
	}
	return Update(func(trx Transaction) error {
		trx.Put(t.pool, key, value)
		return nil
	})
}

// Map - visit every key/value pair, stops at the first error
func (t *Table) Map(f func(key []byte, value []byte) error) error {
	if nil == t.pool {
		return fault.DatabaseIsNotSet
	}
	return t.pool.NewFetchCursor().Map(f)
}

// Count - number of stored pairs
func (t *Table) Count() (int, error) {
	if nil == t.pool {
		return 0, fault.DatabaseIsNotSet
	}
	return t.pool.Count()
}
