// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package knowledge - signed JSON RPC access to the knowledge store
//
// every request carries the owner, a unix timestamp and an ed25519
// signature over the canonical message built by the *Message
// functions; requests that fail verification reach the store without
// an owner and are rejected there as unauthenticated
package knowledge

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/chain"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitKnowledge = 200
	rateBurstKnowledge = 100

	// TimestampWindow - how far a request timestamp may be from the
	// server clock
	TimestampWindow = 5 * time.Minute
)

// Store - the operations served
type Store interface {
	Insert(owner *account.Account, payload []byte, category int32) error
	Search(owner *account.Account, pattern []byte, category int32) ([][]byte, error)
	ListAll(owner *account.Account) ([][]byte, error)
}

// Knowledge - type for RPC calls
type Knowledge struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Store   Store
	Chain   string
	Now     func() time.Time

	// shared by every service touching the store
	lock *sync.Mutex
}

// New - create the RPC service
func New(log *logger.L, store Store, chainName string, lock *sync.Mutex) *Knowledge {
	return &Knowledge{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitKnowledge, rateBurstKnowledge),
		Store:   store,
		Chain:   chainName,
		Now:     time.Now,
		lock:    lock,
	}
}

// ---

// InsertArguments - arguments for insert
type InsertArguments struct {
	Owner     *account.Account  `json:"owner"`
	Payload   Bytes             `json:"payload"`
	Category  int32             `json:"category"`
	Timestamp uint64            `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// InsertReply - result of insert
type InsertReply struct {
	Length int `json:"length"`
}

// Insert - store a payload for the signing owner
func (k *Knowledge) Insert(arguments *InsertArguments, reply *InsertReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	k.Log.Infof("Knowledge.Insert: owner: %s  length: %d  category: %d", arguments.Owner, len(arguments.Payload), arguments.Category)

	message := InsertMessage(arguments.Owner, arguments.Payload, arguments.Category, arguments.Timestamp)
	owner, err := k.verify(arguments.Owner, message, arguments.Timestamp, arguments.Signature)
	if nil != err {
		k.Log.Warnf("Knowledge.Insert: rejected: %s", err)
		return err
	}

	k.lock.Lock()
	err = k.Store.Insert(owner, arguments.Payload, arguments.Category)
	k.lock.Unlock()

	if nil != err {
		k.Log.Warnf("Knowledge.Insert: error: %s", err)
		return err
	}

	reply.Length = len(arguments.Payload)
	k.Log.Debugf("Knowledge.Insert: stored for: %s", owner)
	return nil
}

// ---

// SearchArguments - arguments for search
type SearchArguments struct {
	Owner     *account.Account  `json:"owner"`
	Pattern   Bytes             `json:"pattern"`
	Category  int32             `json:"category"`
	Timestamp uint64            `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// PayloadsReply - payloads found by search or list
type PayloadsReply struct {
	Payloads []Bytes `json:"payloads"`
}

// Search - the signing owner's payloads in a category containing pattern
func (k *Knowledge) Search(arguments *SearchArguments, reply *PayloadsReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	k.Log.Infof("Knowledge.Search: owner: %s  pattern length: %d  category: %d", arguments.Owner, len(arguments.Pattern), arguments.Category)

	message := SearchMessage(arguments.Owner, arguments.Pattern, arguments.Category, arguments.Timestamp)
	owner, err := k.verify(arguments.Owner, message, arguments.Timestamp, arguments.Signature)
	if nil != err {
		k.Log.Warnf("Knowledge.Search: rejected: %s", err)
		return err
	}

	k.lock.Lock()
	matches, err := k.Store.Search(owner, arguments.Pattern, arguments.Category)
	k.lock.Unlock()

	if nil != err {
		k.Log.Warnf("Knowledge.Search: error: %s", err)
		return err
	}

	reply.Payloads = toBytes(matches)
	k.Log.Debugf("Knowledge.Search: matches: %d", len(matches))
	return nil
}

// ---

// ListArguments - arguments for list
type ListArguments struct {
	Owner     *account.Account  `json:"owner"`
	Timestamp uint64            `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// List - every stored payload, whoever owns it
func (k *Knowledge) List(arguments *ListArguments, reply *PayloadsReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	k.Log.Infof("Knowledge.List: owner: %s", arguments.Owner)

	message := ListMessage(arguments.Owner, arguments.Timestamp)
	owner, err := k.verify(arguments.Owner, message, arguments.Timestamp, arguments.Signature)
	if nil != err {
		k.Log.Warnf("Knowledge.List: rejected: %s", err)
		return err
	}

	k.lock.Lock()
	payloads, err := k.Store.ListAll(owner)
	k.lock.Unlock()

	if nil != err {
		k.Log.Warnf("Knowledge.List: error: %s", err)
		return err
	}

	reply.Payloads = toBytes(payloads)
	k.Log.Debugf("Knowledge.List: payloads: %d", len(payloads))
	return nil
}

// verify - the owner to pass to the store
//
// a missing owner or bad signature yields a nil owner so that the
// store reports the request as unauthenticated; a stale timestamp or
// an account from the wrong chain is an error here
func (k *Knowledge) verify(owner *account.Account, message []byte, timestamp uint64, signature account.Signature) (*account.Account, error) {
	if nil == owner {
		return nil, nil
	}

	if err := chain.CheckAccount(k.Chain, owner.IsTesting()); nil != err {
		return nil, err
	}

	now := k.Now()
	requested := time.Unix(int64(timestamp), 0)
	if requested.Before(now.Add(-TimestampWindow)) || requested.After(now.Add(TimestampWindow)) {
		return nil, fault.InvalidTimestamp
	}

	if err := owner.CheckSignature(message, signature); nil != err {
		k.Log.Debugf("signature check failed for: %s  error: %s", owner, err)
		return nil, nil
	}
	return owner, nil
}

func toBytes(payloads [][]byte) []Bytes {
	result := make([]Bytes, len(payloads))
	for i, p := range payloads {
		result[i] = p
	}
	return result
}
