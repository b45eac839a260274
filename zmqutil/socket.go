// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - ZeroMQ sockets and CURVE key files
package zmqutil

import (
	"sync"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
	lingerTime        = 0
)

// the ZAP handler is process wide
var authentication struct {
	once sync.Once
	err  error
}

func startAuthentication() error {
	authentication.once.Do(func() {
		zmq.AuthSetVerbose(false)
		authentication.err = zmq.AuthStart()
	})
	return authentication.err
}

// Publisher - PUB sockets bound to a list of addresses
//
// IPv4 and IPv6 addresses are bound on separate sockets
type Publisher struct {
	log     *logger.L
	sockets []*zmq.Socket
}

// NewPublisher - bind every address, a nil private key leaves the
// sockets unencrypted
func NewPublisher(log *logger.L, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*Publisher, error) {

	if 0 != len(privateKey) {
		if err := startAuthentication(); nil != err {
			return nil, err
		}
	}

	p := &Publisher{
		log: log,
	}
	byFamily := make(map[bool]*zmq.Socket, 2)

	for i, address := range listen {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")

		socket, ok := byFamily[v6]
		if !ok {
			var err error
			socket, err = newPublishSocket(zapDomain, privateKey, publicKey, v6)
			if nil != err {
				p.Close()
				return nil, err
			}
			byFamily[v6] = socket
			p.sockets = append(p.sockets, socket)
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			p.Close()
			return nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}

	return p, nil
}

// Send - a two frame message to every socket
//
// errors are logged and the message dropped for that socket
func (p *Publisher) Send(topic string, data []byte) {
	for _, socket := range p.sockets {
		if _, err := socket.SendMessage(topic, data); nil != err {
			p.log.Errorf("send topic: %s  error: %s", topic, err)
		}
	}
}

// Close - all sockets
func (p *Publisher) Close() {
	for _, socket := range p.sockets {
		socket.Close()
	}
	p.sockets = nil
}

func newPublishSocket(zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if 0 != len(privateKey) {
		// any subscriber knowing the public key may connect
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
		socket.SetZapDomain(zapDomain)
		socket.SetIdentity(string(publicKey))
	}

	socket.SetIpv6(v6)
	socket.SetLinger(lingerTime)

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
