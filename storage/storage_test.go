// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/storage"
)

func setup(t *testing.T) {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.InitialiseInMemory()
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestTablePutGet(t *testing.T) {
	setup(t)
	defer teardown()

	table := storage.NewTable(storage.Pool.Knowledge)

	_, found, err := table.Get([]byte("missing"))
	assert.Nil(t, err, "get error")
	assert.False(t, found, "missing key found")

	err = table.Put([]byte("key-one"), []byte("data-one"))
	assert.Nil(t, err, "put error")

	value, found, err := table.Get([]byte("key-one"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "stored key not found")
	assert.Equal(t, []byte("data-one"), value, "wrong value")

	err = table.Put([]byte("key-one"), []byte("data-one(NEW)"))
	assert.Nil(t, err, "overwrite error")

	value, _, _ = table.Get([]byte("key-one"))
	assert.Equal(t, []byte("data-one(NEW)"), value, "overwrite not visible")

	n, err := table.Count()
	assert.Nil(t, err, "count error")
	assert.Equal(t, 1, n, "overwrite added a record")
}

func TestTableMapIsolatedByPrefix(t *testing.T) {
	setup(t)
	defer teardown()

	knowledge := storage.NewTable(storage.Pool.Knowledge)
	height := storage.NewTable(storage.Pool.BlockHeight)

	expected := map[string]string{
		"a": "alpha",
		"b": "beta",
		"c": "gamma",
	}
	for k, v := range expected {
		assert.Nil(t, knowledge.Put([]byte(k), []byte(v)), "put %q", k)
	}
	assert.Nil(t, height.Put([]byte("a"), []byte("other pool")), "put other pool")

	actual := make(map[string]string)
	err := knowledge.Map(func(key []byte, value []byte) error {
		actual[string(key)] = string(value)
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, expected, actual, "map results")
}

func TestMapStopsOnError(t *testing.T) {
	setup(t)
	defer teardown()

	table := storage.NewTable(storage.Pool.Knowledge)
	for i := 0; i < 5; i += 1 {
		_ = table.Put([]byte{byte(i)}, []byte{byte(i)})
	}

	stop := fault.ProcessError("stop")
	visited := 0
	err := table.Map(func(key []byte, value []byte) error {
		visited += 1
		if 2 == visited {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "map error")
	assert.Equal(t, 2, visited, "map continued after error")
}

func TestFetchPages(t *testing.T) {
	setup(t)
	defer teardown()

	table := storage.NewTable(storage.Pool.Knowledge)
	for i := 0; i < 7; i += 1 {
		_ = table.Put([]byte(fmt.Sprintf("key-%02d", i)), []byte{byte(i)})
	}

	cursor := storage.Pool.Knowledge.NewFetchCursor()

	page, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch 1")
	assert.Equal(t, 3, len(page), "page 1 size")
	assert.Equal(t, []byte("key-00"), page[0].Key, "page 1 first key")

	page, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch 2")
	assert.Equal(t, 3, len(page), "page 2 size")
	assert.Equal(t, []byte("key-03"), page[0].Key, "page 2 first key")

	page, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch 3")
	assert.Equal(t, 1, len(page), "page 3 size")
	assert.Equal(t, []byte{6}, page[0].Value, "page 3 value")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestTransactionPutN(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.BlockHeight
	key := []byte("height")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.PutN(pool, key, 1234)
	n, found := trx.GetN(pool, key)
	assert.True(t, found, "staged value not visible")
	assert.Equal(t, uint64(1234), n, "staged value")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "nested transaction")

	assert.Nil(t, trx.Commit(), "commit")

	n, found = pool.GetN(key)
	assert.True(t, found, "committed value not found")
	assert.Equal(t, uint64(1234), n, "committed value")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.Knowledge
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(pool, []byte("key"), []byte("value"))
	assert.True(t, trx.Has(pool, []byte("key")), "staged key not visible")
	trx.Abort()

	assert.False(t, pool.Has([]byte("key")), "aborted key visible")
	assert.False(t, trx.InUse(), "abort did not release")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "transaction without database")

	table := storage.NewTable(storage.Pool.Knowledge)
	err = table.Put([]byte("k"), []byte("v"))
	assert.Equal(t, fault.DatabaseIsNotSet, err, "put without database")
}

func TestDataSurvivesRestart(t *testing.T) {
	dir, err := ioutil.TempDir("", "knowledged-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	database := filepath.Join(dir, "test.leveldb")

	err = storage.Initialise(database, storage.ReadWrite)
	assert.Nil(t, err, "initialise")
	_ = storage.NewTable(storage.Pool.Knowledge).Put([]byte("key"), []byte("kept"))
	storage.Finalise()

	err = storage.Initialise(database, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	defer storage.Finalise()

	value, found, err := storage.NewTable(storage.Pool.Knowledge).Get([]byte("key"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "value lost on restart")
	assert.Equal(t, []byte("kept"), value, "wrong value after restart")
}

func TestUpdate(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.Knowledge

	err := storage.Update(func(trx storage.Transaction) error {
		trx.Put(pool, []byte("one"), []byte("1"))
		trx.Put(pool, []byte("two"), []byte("2"))
		return nil
	})
	assert.Nil(t, err, "update")
	assert.True(t, pool.Has([]byte("one")), "first key missing")
	assert.True(t, pool.Has([]byte("two")), "second key missing")

	failed := fault.ProcessError("failed")
	err = storage.Update(func(trx storage.Transaction) error {
		trx.Put(pool, []byte("three"), []byte("3"))
		return failed
	})
	assert.Equal(t, failed, err, "update error")
	assert.False(t, pool.Has([]byte("three")), "failed update was written")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "batch released after failed update")
	trx.Abort()
}

func TestUpdateSerialises(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.BlockHeight
	key := []byte("n")

	done := make(chan error)
	for i := 0; i < 10; i += 1 {
		go func() {
			done <- storage.Update(func(trx storage.Transaction) error {
				n, _ := trx.GetN(pool, key)
				trx.PutN(pool, key, n+1)
				return nil
			})
		}()
	}
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, <-done, "concurrent update")
	}

	n, found := pool.GetN(key)
	assert.True(t, found, "counter missing")
	assert.Equal(t, uint64(10), n, "lost update")
}
