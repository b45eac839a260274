// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/knowledge"
	"github.com/bitmark-inc/knowledged/storage"
)

// fixed height sequence, tests move it explicitly
type testSequence struct {
	height uint64
}

func (s *testSequence) Height() uint64 {
	return s.height
}

// sink that keeps every event
type testSink struct {
	events []knowledge.Event
}

func (s *testSink) Emit(e knowledge.Event) {
	s.events = append(s.events, e)
}

func (s *testSink) last() knowledge.Event {
	return s.events[len(s.events)-1]
}

// deterministic accounts
func makeAccount(t *testing.T, seed byte) *account.Account {
	privateKey, err := account.NewPrivateKey(true, bytes.NewReader(bytes.Repeat([]byte{seed}, 64)))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey.Account()
}

type testStore struct {
	store    *knowledge.Store
	table    *storage.Table
	sequence *testSequence
	sink     *testSink
}

// a store over an in-memory database
func setupStore(t *testing.T, minimum uint32, maximum uint32, policy string, collision string) *testStore {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	configuration := &knowledge.Configuration{
		MinimumLength: minimum,
		MaximumLength: maximum,
		KeyPolicy:     policy,
		Collision:     collision,
	}

	ts := &testStore{
		table:    storage.NewTable(storage.Pool.Knowledge),
		sequence: &testSequence{height: 1},
		sink:     &testSink{},
	}
	ts.store, err = knowledge.New(configuration, ts.table, ts.sequence, ts.sink)
	if nil != err {
		storage.Finalise()
		t.Fatalf("store create error: %s", err)
	}
	return ts
}

func teardownStore() {
	storage.Finalise()
}

func (ts *testStore) count(t *testing.T) int {
	n, err := ts.table.Count()
	if nil != err {
		t.Fatalf("count error: %s", err)
	}
	return n
}

func payloads(s ...string) [][]byte {
	result := make([][]byte, len(s))
	for i, p := range s {
		result[i] = []byte(p)
	}
	return result
}
