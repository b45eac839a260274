// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/rpc/knowledge"
)

// Insert - store a payload under the client's account
func (c *Client) Insert(payload []byte, category int32) (*knowledge.InsertReply, error) {
	if nil == c.key {
		return nil, fault.MissingPrivateKey
	}

	owner := c.key.Account()
	timestamp := c.timestamp()
	arguments := knowledge.InsertArguments{
		Owner:     owner,
		Payload:   payload,
		Category:  category,
		Timestamp: timestamp,
		Signature: c.key.Sign(knowledge.InsertMessage(owner, payload, category, timestamp)),
	}
	c.printJson("Insert Request", arguments)

	var reply knowledge.InsertReply
	if err := c.client.Call("Knowledge.Insert", &arguments, &reply); err != nil {
		return nil, err
	}

	c.printJson("Insert Reply", reply)
	return &reply, nil
}

// Search - the client's payloads in category containing pattern
func (c *Client) Search(pattern []byte, category int32) ([][]byte, error) {
	if nil == c.key {
		return nil, fault.MissingPrivateKey
	}

	owner := c.key.Account()
	timestamp := c.timestamp()
	arguments := knowledge.SearchArguments{
		Owner:     owner,
		Pattern:   pattern,
		Category:  category,
		Timestamp: timestamp,
		Signature: c.key.Sign(knowledge.SearchMessage(owner, pattern, category, timestamp)),
	}
	c.printJson("Search Request", arguments)

	var reply knowledge.PayloadsReply
	if err := c.client.Call("Knowledge.Search", &arguments, &reply); err != nil {
		return nil, err
	}

	c.printJson("Search Reply", reply)
	return fromBytes(reply.Payloads), nil
}

// List - every stored payload
func (c *Client) List() ([][]byte, error) {
	if nil == c.key {
		return nil, fault.MissingPrivateKey
	}

	owner := c.key.Account()
	timestamp := c.timestamp()
	arguments := knowledge.ListArguments{
		Owner:     owner,
		Timestamp: timestamp,
		Signature: c.key.Sign(knowledge.ListMessage(owner, timestamp)),
	}
	c.printJson("List Request", arguments)

	var reply knowledge.PayloadsReply
	if err := c.client.Call("Knowledge.List", &arguments, &reply); err != nil {
		return nil, err
	}

	c.printJson("List Reply", reply)
	return fromBytes(reply.Payloads), nil
}

func fromBytes(payloads []knowledge.Bytes) [][]byte {
	result := make([][]byte, len(payloads))
	for i, p := range payloads {
		result[i] = p
	}
	return result
}
