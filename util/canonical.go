// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/knowledged/fault"
)

// Connection - a validated IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse "IP:port" or "[IPv6]:port"
//
// host names are not accepted, the IP must be literal
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIPAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return nil, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	return &Connection{
		ip:   IP,
		port: numericPort,
	}, nil
}

// CanonicalIPandPort - render with an optional scheme prefix
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// the second result is true for IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - canonical form without prefix
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
