// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/knowledged/chain"
	"github.com/bitmark-inc/knowledged/counter"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/rpc/fixtures"
	"github.com/bitmark-inc/knowledged/rpc/knowledge"
	"github.com/bitmark-inc/knowledged/rpc/mocks"
	"github.com/bitmark-inc/knowledged/rpc/node"
	"github.com/bitmark-inc/knowledged/rpc/server"
	"github.com/bitmark-inc/logger"
)

// following tests make sure the proper methods are registered by
// calling each one over a jsonrpc connection

func TestKnowledgeList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	store.EXPECT().ListAll(gomock.Nil()).Return(nil, fault.Unauthenticated).Times(1)

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, store, node.Sources{Chain: chain.Testing})

	serverConn, clientConn := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	arg := knowledge.ListArguments{
		Timestamp: uint64(time.Now().Unix()),
	}
	var reply knowledge.PayloadsReply
	err := client.Call("Knowledge.List", &arg, &reply)
	assert.NotNil(t, err, "wrong Knowledge.List")
	assert.Equal(t, fault.Unauthenticated.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, store, node.Sources{Chain: chain.Testing})

	serverConn, clientConn := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.NotNil(t, err, "wrong Node.Info")
	assert.Equal(t, fault.DatabaseIsNotSet.Error(), err.Error(), "wrong node info")
}
