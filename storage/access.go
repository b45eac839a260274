// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/knowledged/fault"
)

// Access - LevelDB reads and writes with one shared write batch
//
// Get and Has see staged writes, Iterator only sees committed data
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Pending() int
	Put([]byte, []byte)
}

type batchAccess struct {
	sync.Mutex
	open   bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	staged Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, staged Cache) Access {
	return &batchAccess{
		db:     db,
		batch:  batch,
		staged: staged,
	}
}

func (a *batchAccess) Begin() error {
	a.Lock()
	defer a.Unlock()

	if a.open {
		return fault.TransactionAlreadyInUse
	}
	a.open = true
	return nil
}

func (a *batchAccess) InUse() bool {
	a.Lock()
	defer a.Unlock()
	return a.open
}

// Pending - number of writes staged in the batch
func (a *batchAccess) Pending() int {
	return a.batch.Len()
}

func (a *batchAccess) Put(key []byte, value []byte) {
	a.batch.Put(key, value)
	a.staged.Set(string(key), value)
}

func (a *batchAccess) Get(key []byte) ([]byte, error) {
	if value, ok := a.staged.Get(string(key)); ok {
		return value, nil
	}
	return a.db.Get(key, nil)
}

func (a *batchAccess) Has(key []byte) (bool, error) {
	if _, ok := a.staged.Get(string(key)); ok {
		return true, nil
	}
	return a.db.Has(key, nil)
}

func (a *batchAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return a.db.NewIterator(searchRange, nil)
}

// Commit - write the batch then release it, even on a failed write
func (a *batchAccess) Commit() error {
	err := a.db.Write(a.batch, nil)
	a.Abort()
	return err
}

// Abort - drop the staged writes and release the batch
func (a *batchAccess) Abort() {
	a.Lock()
	defer a.Unlock()

	a.batch.Reset()
	a.staged.Clear()
	a.open = false
}
