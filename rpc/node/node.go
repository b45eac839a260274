// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC reporting the state of this daemon
package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/knowledged/counter"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Height - current block height
type Height interface {
	Height() uint64
}

// Records - number of stored records
type Records interface {
	Count() (int, error)
}

// Events - event delivery totals
type Events interface {
	Sent() uint64
	Dropped() uint64
}

// Sources - where Info gathers its values
type Sources struct {
	Chain     string
	Policy    string
	Height    Height
	Records   Records
	Events    Events
	PublicKey []byte
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	sources Sources
	counter *counter.Counter
}

// New - create the RPC service
func New(log *logger.L, sources Sources, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		sources: sources,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string     `json:"chain"`
	Version   string     `json:"version"`
	Uptime    string     `json:"uptime"`
	Height    uint64     `json:"height"`
	RPCs      uint64     `json:"rpcs"`
	Records   int        `json:"records"`
	KeyPolicy string     `json:"keyPolicy"`
	Events    EventsInfo `json:"events"`
	PublicKey string     `json:"publicKey,omitempty"`
}

// EventsInfo - published and discarded event totals
type EventsInfo struct {
	Sent    uint64 `json:"sent"`
	Dropped uint64 `json:"dropped"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.sources.Records {
		return fault.DatabaseIsNotSet
	}

	records, err := node.sources.Records.Count()
	if nil != err {
		node.Log.Errorf("record count error: %s", err)
		return err
	}

	reply.Chain = node.sources.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.sources.Height {
		reply.Height = node.sources.Height.Height()
	}
	reply.RPCs = node.counter.Uint64()
	reply.Records = records
	reply.KeyPolicy = node.sources.Policy
	if nil != node.sources.Events {
		reply.Events = EventsInfo{
			Sent:    node.sources.Events.Sent(),
			Dropped: node.sources.Events.Dropped(),
		}
	}
	if 0 != len(node.sources.PublicKey) {
		reply.PublicKey = hex.EncodeToString(node.sources.PublicKey)
	}
	return nil
}
