// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept TLS connections and serve JSON RPC on them
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/knowledged/counter"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started or startable server
type Listener interface {
	Serve() error
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []string
	listeners      []net.Listener
	wg             sync.WaitGroup
}

// NewRPC - validate the configuration and create an unstarted listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint util.FingerprintBytes,
) (Listener, error) {

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses := make([]string, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		c, err := util.NewConnection(listen)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		addresses = append(addresses, c.String())
	}

	log.Infof("%s: SHA3-256 fingerprint: %s", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// Serve - start accepting on every configured address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, listen := range r.addresses {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen("tcp", listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		r.wg.Add(1)
		go func(l net.Listener) {
			defer r.wg.Done()
			r.accept(l)
		}(l)
	}
	return nil
}

// Stop - close every listener and wait for the accept loops to end
//
// connections already being served run until the client disconnects
func (r *rpcListener) Stop() {
	r.Lock()
	r.closeAll()
	r.Unlock()
	r.wg.Wait()
}

// internal: must hold lock
func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if r.count.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				r.count.Decrement()
			}()
		} else {
			r.count.Decrement()
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
		}
	}
}
