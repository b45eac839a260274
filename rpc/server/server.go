// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the RPC services
package server

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/knowledged/counter"
	"github.com/bitmark-inc/knowledged/rpc/knowledge"
	"github.com/bitmark-inc/knowledged/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
//
// all store access from the server goes through one lock
func Create(log *logger.L, version string, rpcCount *counter.Counter, store knowledge.Store, sources node.Sources) *rpc.Server {

	start := time.Now().UTC()
	lock := &sync.Mutex{}

	server := rpc.NewServer()

	_ = server.Register(knowledge.New(log, store, sources.Chain, lock))
	_ = server.Register(node.New(log, sources, start, version, rpcCount))

	return server
}
