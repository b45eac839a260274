// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"bytes"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/fault"
)

// Table - persistent key to packed record mapping
type Table interface {
	Get(key []byte) ([]byte, bool, error)
	Put(key []byte, value []byte) error
	Map(f func(key []byte, value []byte) error) error
}

// Sequence - source of the current block height
type Sequence interface {
	Height() uint64
}

// Sink - receiver of store events
//
// delivery is at most once and Emit must not block
type Sink interface {
	Emit(Event)
}

// Store - the knowledge store
type Store struct {
	minimumLength int
	maximumLength int
	policy        KeyPolicy
	table         Table
	sequence      Sequence
	sink          Sink
}

// New - create a store over the supplied table
func New(configuration *Configuration, table Table, sequence Sequence, sink Sink) (*Store, error) {
	if nil == configuration {
		return nil, fault.MissingParameters
	}
	if nil == table {
		return nil, fault.MissingTable
	}
	if nil == sequence {
		return nil, fault.MissingSequence
	}
	if nil == sink {
		return nil, fault.MissingSink
	}
	if err := configuration.Validate(); nil != err {
		return nil, err
	}

	policy, err := newKeyPolicy(configuration.KeyPolicy, configuration.Collision)
	if nil != err {
		return nil, err
	}

	return &Store{
		minimumLength: int(configuration.MinimumLength),
		maximumLength: int(configuration.MaximumLength),
		policy:        policy,
		table:         table,
		sequence:      sequence,
		sink:          sink,
	}, nil
}

// Policy - name of the key policy in use
func (s *Store) Policy() string {
	return s.policy.Name()
}

// Insert - store a payload for the owner
//
// nothing is written and no event is emitted if any check fails
func (s *Store) Insert(owner *account.Account, payload []byte, category int32) error {
	if nil == owner {
		return fault.Unauthenticated
	}
	if len(payload) > s.maximumLength {
		return fault.TooLong
	}
	if len(payload) < s.minimumLength {
		return fault.TooShort
	}

	key := s.policy.Key(owner, s.sequence.Height())

	if !s.policy.Overwrites() {
		_, found, err := s.table.Get(key)
		if nil != err {
			return err
		}
		if found {
			return fault.KeyCollision
		}
	}

	record := Record{
		Payload:  append([]byte{}, payload...),
		Category: category,
		Owner:    owner,
	}
	err := s.table.Put(key, record.Pack())
	if nil != err {
		return err
	}

	s.sink.Emit(NewAdded(record.Payload))
	return nil
}

// Search - payloads of the owner's records in category containing pattern
//
// an empty pattern matches every payload
func (s *Store) Search(owner *account.Account, pattern []byte, category int32) ([][]byte, error) {
	if nil == owner {
		return nil, fault.Unauthenticated
	}

	matches := make([][]byte, 0)
	err := s.table.Map(func(key []byte, value []byte) error {
		record, err := RecordFromBytes(value)
		if nil != err {
			return err
		}
		if category != record.Category || !owner.Equal(record.Owner) {
			return nil
		}
		if bytes.Contains(record.Payload, pattern) {
			matches = append(matches, record.Payload)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	s.sink.Emit(NewSearchResult(owner, matches))
	return matches, nil
}

// ListAll - every stored payload
//
// the caller must be identified but the result is not limited to the
// caller's own records
func (s *Store) ListAll(owner *account.Account) ([][]byte, error) {
	if nil == owner {
		return nil, fault.Unauthenticated
	}

	payloads := make([][]byte, 0)
	err := s.table.Map(func(key []byte, value []byte) error {
		record, err := RecordFromBytes(value)
		if nil != err {
			return err
		}
		payloads = append(payloads, record.Payload)
		return nil
	})
	if nil != err {
		return nil, err
	}

	s.sink.Emit(NewListed(payloads))
	return payloads, nil
}
