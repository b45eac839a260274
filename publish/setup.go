// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - relay store events to ZeroMQ subscribers
package publish

import (
	"sync"

	"github.com/bitmark-inc/knowledged/background"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/messagebus"
	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/knowledged/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
//
// both key files empty publishes without encryption
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc *broadcaster

	publicKey []byte

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start publishing events from the bus
func Initialise(configuration *Configuration, bus *messagebus.BroadcastQueue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		log.Warn("no broadcast addresses: publishing disabled")
		globalData.initialised = true
		return nil
	}

	listen := make([]*util.Connection, 0, len(configuration.Broadcast))
	for i, address := range configuration.Broadcast {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			return err
		}
		listen = append(listen, c)
	}

	privateKey := []byte(nil)
	publicKey := []byte(nil)
	if "" != configuration.PrivateKey || "" != configuration.PublicKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		log.Tracef("public key:  %x", publicKey)
	}
	globalData.publicKey = publicKey

	brdc, err := newBroadcaster(log, privateKey, publicKey, listen, bus)
	if nil != err {
		log.Errorf("broadcaster error: %s", err)
		return err
	}
	globalData.brdc = brdc

	// all data initialised
	globalData.initialised = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		brdc,
	}

	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()
	globalData.background = nil
	globalData.brdc = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// PublicKey - the CURVE key subscribers must use, nil if unencrypted
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}
