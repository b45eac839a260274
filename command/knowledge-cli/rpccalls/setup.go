// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - signed JSON RPC requests to knowledged
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/knowledged/account"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey
	now     func() time.Time
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a knowledged
//
// the server certificate is self signed so it is not verified
func NewClient(connect string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, key, verbose, handle), nil
}

func newClient(conn net.Conn, key *account.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		now:     time.Now,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the knowledged connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) timestamp() uint64 {
	return uint64(c.now().Unix())
}

func (c *Client) printJson(title string, message interface{}) error {

	if !c.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" == title {
		fmt.Fprintf(c.handle, "%s\n", b)
	} else {
		fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
	}
	return nil
}
