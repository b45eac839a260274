// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/knowledge"
	"github.com/bitmark-inc/knowledged/knowledge/mocks"
	"github.com/bitmark-inc/knowledged/storage"
)

var policies = []struct {
	name      string
	policy    string
	collision string
}{
	{"content/reject", knowledge.ContentKeyed, knowledge.CollisionReject},
	{"content/overwrite", knowledge.ContentKeyed, knowledge.CollisionOverwrite},
	{"owner", knowledge.OwnerKeyed, ""},
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	table := mocks.NewMockTable(ctl)
	sequence := mocks.NewMockSequence(ctl)
	sink := mocks.NewMockSink(ctl)

	tests := []struct {
		configuration knowledge.Configuration
		err           error
	}{
		{knowledge.Configuration{MinimumLength: 5, MaximumLength: 4}, fault.ConfigurationLengthInvalid},
		{knowledge.Configuration{MinimumLength: 0, MaximumLength: 0}, fault.ConfigurationLengthInvalid},
		{knowledge.Configuration{MinimumLength: 1, MaximumLength: 4, KeyPolicy: "random"}, fault.InvalidKeyPolicy},
		{knowledge.Configuration{MinimumLength: 1, MaximumLength: 4, Collision: "merge"}, fault.InvalidCollisionPolicy},
	}

	for i, item := range tests {
		_, err := knowledge.New(&item.configuration, table, sequence, sink)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}

	configuration := knowledge.DefaultConfiguration()
	_, err := knowledge.New(&configuration, nil, sequence, sink)
	assert.Equal(t, fault.MissingTable, err, "nil table")
	_, err = knowledge.New(&configuration, table, nil, sink)
	assert.Equal(t, fault.MissingSequence, err, "nil sequence")
	_, err = knowledge.New(&configuration, table, sequence, nil)
	assert.Equal(t, fault.MissingSink, err, "nil sink")
	_, err = knowledge.New(nil, table, sequence, sink)
	assert.Equal(t, fault.MissingParameters, err, "nil configuration")

	store, err := knowledge.New(&configuration, table, sequence, sink)
	assert.Nil(t, err, "default configuration")
	assert.Equal(t, knowledge.ContentKeyed, store.Policy(), "default policy")
}

func TestInsertLengthBounds(t *testing.T) {
	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			ts := setupStore(t, 2, 10, p.policy, p.collision)
			defer teardownStore()

			owner := makeAccount(t, 1)

			err := ts.store.Insert(owner, []byte("h"), 1)
			assert.Equal(t, fault.TooShort, err, "one byte payload")

			err = ts.store.Insert(owner, []byte{}, 1)
			assert.Equal(t, fault.TooShort, err, "empty payload")

			err = ts.store.Insert(owner, []byte("hello world"), 1)
			assert.Equal(t, fault.TooLong, err, "eleven byte payload")

			assert.Equal(t, 0, ts.count(t), "failed inserts wrote records")
			assert.Equal(t, 0, len(ts.sink.events), "failed inserts emitted events")

			for _, s := range []string{"hi", "0123456789"} {
				ts.sequence.height += 1
				err = ts.store.Insert(owner, []byte(s), 1)
				assert.Nil(t, err, "insert %q", s)

				all, err := ts.store.ListAll(owner)
				assert.Nil(t, err, "list all")
				assert.Contains(t, all, []byte(s), "payload not listed")
			}
		})
	}
}

func TestTooLongCheckedBeforeTooShort(t *testing.T) {
	ts := setupStore(t, 8, 8, knowledge.ContentKeyed, "")
	defer teardownStore()

	owner := makeAccount(t, 1)
	assert.Equal(t, fault.TooLong, ts.store.Insert(owner, bytes.Repeat([]byte{'x'}, 9), 0), "long")
	assert.Equal(t, fault.TooShort, ts.store.Insert(owner, bytes.Repeat([]byte{'x'}, 7), 0), "short")
	assert.Nil(t, ts.store.Insert(owner, bytes.Repeat([]byte{'x'}, 8), 0), "exact")
}

func TestUnauthenticated(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.OwnerKeyed, "")
	defer teardownStore()

	err := ts.store.Insert(nil, []byte("hello"), 1)
	assert.Equal(t, fault.Unauthenticated, err, "insert")

	_, err = ts.store.Search(nil, []byte("he"), 1)
	assert.Equal(t, fault.Unauthenticated, err, "search")

	_, err = ts.store.ListAll(nil)
	assert.Equal(t, fault.Unauthenticated, err, "list all")

	assert.Equal(t, 0, ts.count(t), "records written")
	assert.Equal(t, 0, len(ts.sink.events), "events emitted")
}

func TestInsertEmitsAdded(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.ContentKeyed, "")
	defer teardownStore()

	payload := []byte("hello")
	err := ts.store.Insert(makeAccount(t, 1), payload, 1)
	assert.Nil(t, err, "insert")

	payload[0] = 'j'

	assert.Equal(t, 1, len(ts.sink.events), "event count")
	event := ts.sink.last()
	assert.Equal(t, knowledge.Added, event.Kind, "event kind")
	assert.Equal(t, payloads("hello"), event.Payloads, "event payload")
	assert.Nil(t, event.Owner, "added event has owner")

	all, _ := ts.store.ListAll(makeAccount(t, 1))
	assert.Equal(t, payloads("hello"), all, "caller buffer reused by store")
}

func TestOwnerKeyedOverwrites(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.OwnerKeyed, "")
	defer teardownStore()

	owner := makeAccount(t, 1)
	other := makeAccount(t, 2)

	assert.Nil(t, ts.store.Insert(owner, []byte("first"), 1), "first insert")
	ts.sequence.height += 1
	assert.Nil(t, ts.store.Insert(owner, []byte("second"), 7), "second insert")
	assert.Nil(t, ts.store.Insert(other, []byte("other"), 1), "other owner insert")

	assert.Equal(t, 2, ts.count(t), "record count")

	matches, err := ts.store.Search(owner, nil, 7)
	assert.Nil(t, err, "search")
	assert.Equal(t, payloads("second"), matches, "second payload replaced first")

	matches, err = ts.store.Search(owner, nil, 1)
	assert.Nil(t, err, "search")
	assert.Equal(t, 0, len(matches), "first payload still present")
}

func TestContentKeyedCollision(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.ContentKeyed, knowledge.CollisionReject)
	defer teardownStore()

	owner := makeAccount(t, 1)

	assert.Nil(t, ts.store.Insert(owner, []byte("first"), 1), "first insert")
	err := ts.store.Insert(makeAccount(t, 2), []byte("second"), 1)
	assert.Equal(t, fault.KeyCollision, err, "same height insert")

	assert.Equal(t, 1, ts.count(t), "collision wrote a record")
	assert.Equal(t, 1, len(ts.sink.events), "collision emitted an event")

	ts.sequence.height += 1
	assert.Nil(t, ts.store.Insert(owner, []byte("second"), 1), "next height insert")
	assert.Equal(t, 2, ts.count(t), "record count")
}

func TestContentKeyedCollisionOverwrite(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.ContentKeyed, knowledge.CollisionOverwrite)
	defer teardownStore()

	owner := makeAccount(t, 1)

	assert.Nil(t, ts.store.Insert(owner, []byte("first"), 1), "first insert")
	assert.Nil(t, ts.store.Insert(owner, []byte("second"), 1), "same height insert")

	all, err := ts.store.ListAll(owner)
	assert.Nil(t, err, "list all")
	assert.Equal(t, payloads("second"), all, "later insert replaces earlier")
}

// with default configuration two owners inserting inside one block
// interval both succeed
func TestDefaultConfigurationSameHeight(t *testing.T) {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer teardownStore()

	configuration := knowledge.DefaultConfiguration()
	assert.Equal(t, knowledge.CollisionOverwrite, configuration.Collision, "default collision")

	table := storage.NewTable(storage.Pool.Knowledge)
	sink := &testSink{}
	store, err := knowledge.New(&configuration, table, &testSequence{height: 1}, sink)
	assert.Nil(t, err, "store create")

	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	assert.Nil(t, store.Insert(alice, []byte("hello"), 1), "alice insert")
	assert.Nil(t, store.Insert(bob, []byte("world"), 1), "bob insert at same height")
	assert.Equal(t, 2, len(sink.events), "added events")

	all, err := store.ListAll(alice)
	assert.Nil(t, err, "list all")
	assert.Equal(t, payloads("world"), all, "later insert replaces earlier")

	n, err := table.Count()
	assert.Nil(t, err, "count")
	assert.Equal(t, 1, n, "record count")
}

func TestSearch(t *testing.T) {
	ts := setupStore(t, 1, 20, knowledge.ContentKeyed, "")
	defer teardownStore()

	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	inserts := []struct {
		owner    int
		payload  string
		category int32
	}{
		{1, "hello world", 1},
		{1, "help", 1},
		{1, "yellow", 1},
		{1, "hello again", 2},
		{2, "hello bob", 1},
		{1, "x", 1},
	}
	for _, item := range inserts {
		owner := alice
		if 2 == item.owner {
			owner = bob
		}
		ts.sequence.height += 1
		err := ts.store.Insert(owner, []byte(item.payload), item.category)
		assert.Nil(t, err, "insert %q", item.payload)
	}

	tests := []struct {
		pattern  string
		category int32
		expected [][]byte
	}{
		{"hel", 1, payloads("hello world", "help")},
		{"ell", 1, payloads("hello world", "yellow")},
		{"", 1, payloads("hello world", "help", "yellow", "x")},
		{"", 2, payloads("hello again")},
		{"bob", 1, payloads()},
		{"hello world and more", 1, payloads()},
		{"hello", 3, payloads()},
		{"HELLO", 1, payloads()},
	}

	for i, item := range tests {
		matches, err := ts.store.Search(alice, []byte(item.pattern), item.category)
		assert.Nil(t, err, "%d: search error", i)
		assert.NotNil(t, matches, "%d: nil result", i)
		assert.ElementsMatch(t, item.expected, matches, "%d: search %q in %d", i, item.pattern, item.category)

		event := ts.sink.last()
		assert.Equal(t, knowledge.SearchResult, event.Kind, "%d: event kind", i)
		assert.True(t, alice.Equal(event.Owner), "%d: event owner", i)
		assert.ElementsMatch(t, item.expected, event.Payloads, "%d: event payloads", i)
	}
}

func TestListAllEmpty(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.OwnerKeyed, "")
	defer teardownStore()

	all, err := ts.store.ListAll(makeAccount(t, 1))
	assert.Nil(t, err, "list all")
	assert.NotNil(t, all, "nil result")
	assert.Equal(t, 0, len(all), "records listed")

	event := ts.sink.last()
	assert.Equal(t, knowledge.Listed, event.Kind, "event kind")
	assert.Equal(t, 0, len(event.Payloads), "event payloads")
}

// list all is deliberately not scoped to the caller: any identified
// caller sees every owner's payloads
func TestListAllIsNotScopedToCaller(t *testing.T) {
	ts := setupStore(t, 2, 10, knowledge.OwnerKeyed, "")
	defer teardownStore()

	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)
	carol := makeAccount(t, 3)

	assert.Nil(t, ts.store.Insert(alice, []byte("alice"), 1), "alice insert")
	assert.Nil(t, ts.store.Insert(bob, []byte("bob"), 2), "bob insert")

	all, err := ts.store.ListAll(carol)
	assert.Nil(t, err, "list all")
	assert.ElementsMatch(t, payloads("alice", "bob"), all, "carol sees every record")

	event := ts.sink.last()
	assert.Equal(t, knowledge.Listed, event.Kind, "event kind")
	assert.ElementsMatch(t, payloads("alice", "bob"), event.Payloads, "event payloads")
}

func TestScenario(t *testing.T) {
	expected := map[string][][]byte{
		knowledge.ContentKeyed: payloads("hello"),
		knowledge.OwnerKeyed:   payloads(),
	}
	expectedCount := map[string]int{
		knowledge.ContentKeyed: 2,
		knowledge.OwnerKeyed:   1,
	}

	for _, policy := range []string{knowledge.ContentKeyed, knowledge.OwnerKeyed} {
		t.Run(policy, func(t *testing.T) {
			ts := setupStore(t, 2, 10, policy, "")
			defer teardownStore()

			a := makeAccount(t, 1)

			assert.Nil(t, ts.store.Insert(a, []byte("hello"), 1), "insert hello")
			ts.sequence.height += 1
			assert.Nil(t, ts.store.Insert(a, []byte("hi"), 1), "insert hi")

			matches, err := ts.store.Search(a, []byte("he"), 1)
			assert.Nil(t, err, "search")
			assert.ElementsMatch(t, expected[policy], matches, "search result")
			assert.Equal(t, expectedCount[policy], ts.count(t), "record count")
		})
	}
}

func TestFailedPutLeavesNoEvent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	table := mocks.NewMockTable(ctl)
	sequence := mocks.NewMockSequence(ctl)
	sink := mocks.NewMockSink(ctl)

	configuration := knowledge.Configuration{
		MinimumLength: 2,
		MaximumLength: 10,
		KeyPolicy:     knowledge.ContentKeyed,
	}
	store, err := knowledge.New(&configuration, table, sequence, sink)
	assert.Nil(t, err, "new")

	putError := fault.ProcessError("disk full")

	sequence.EXPECT().Height().Return(uint64(42)).Times(1)
	table.EXPECT().Get(gomock.Any()).Return(nil, false, nil).Times(1)
	table.EXPECT().Put(gomock.Any(), gomock.Any()).Return(putError).Times(1)
	sink.EXPECT().Emit(gomock.Any()).Times(0)

	err = store.Insert(makeAccount(t, 1), []byte("hello"), 1)
	assert.Equal(t, putError, err, "put error not returned")
}

func TestRejectedInsertDoesNotTouchTable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	table := mocks.NewMockTable(ctl)
	sequence := mocks.NewMockSequence(ctl)
	sink := mocks.NewMockSink(ctl)

	configuration := knowledge.Configuration{
		MinimumLength: 2,
		MaximumLength: 10,
		KeyPolicy:     knowledge.OwnerKeyed,
	}
	store, err := knowledge.New(&configuration, table, sequence, sink)
	assert.Nil(t, err, "new")

	// no expectations: any table, sequence or sink call fails the test
	assert.Equal(t, fault.TooLong, store.Insert(makeAccount(t, 1), []byte("hello world"), 1), "too long")
	assert.Equal(t, fault.TooShort, store.Insert(makeAccount(t, 1), []byte("h"), 1), "too short")
	assert.Equal(t, fault.Unauthenticated, store.Insert(nil, []byte("hello"), 1), "unauthenticated")
}

func TestCorruptRecordStopsScan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	table := mocks.NewMockTable(ctl)
	sequence := mocks.NewMockSequence(ctl)
	sink := mocks.NewMockSink(ctl)

	configuration := knowledge.DefaultConfiguration()
	store, err := knowledge.New(&configuration, table, sequence, sink)
	assert.Nil(t, err, "new")

	table.EXPECT().Map(gomock.Any()).DoAndReturn(func(f func([]byte, []byte) error) error {
		return f([]byte("key"), []byte{0x05, 'a'})
	}).Times(1)
	sink.EXPECT().Emit(gomock.Any()).Times(0)

	_, err = store.ListAll(makeAccount(t, 1))
	assert.Equal(t, fault.RecordPayloadLengthOutOfRange, err, "corrupt record")
}
