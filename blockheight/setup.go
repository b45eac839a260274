// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheight - the node's monotonic sequence counter
//
// the height is stored in the BlockHeight pool and survives restarts,
// a background process advances it once per configured interval
package blockheight

import (
	"sync"
	"time"

	"github.com/bitmark-inc/knowledged/background"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/storage"
	"github.com/bitmark-inc/logger"
)

var heightKey = []byte("height")

// globals for height
type heightData struct {
	sync.RWMutex

	log *logger.L

	height   uint64
	interval time.Duration

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData heightData

// Sequence - the current height as a value for the knowledge store
type Sequence struct{}

// Height - current height
func (Sequence) Height() uint64 {
	return Height()
}

// Initialise - load the stored height and start advancing it
//
// an interval of zero disables the background process so the height
// only moves by calls to Advance
func Initialise(interval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == storage.Pool.BlockHeight {
		return fault.DatabaseIsNotSet
	}

	log := logger.New("blockheight")
	globalData.log = log
	log.Info("starting…")

	height, found := storage.Pool.BlockHeight.GetN(heightKey)
	if !found {
		height = 0
	}
	globalData.height = height
	globalData.interval = interval

	log.Infof("block height: %d", height)

	if interval > 0 {
		globalData.background = background.Start(background.Processes{&advancer{log: log}}, interval)
	} else {
		log.Warn("block interval is zero: height will not advance")
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop the background process
func Finalise() error {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}
	p := globalData.background
	globalData.background = nil
	globalData.Unlock()

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// must not hold the lock: the process may be inside Advance
	p.Stop()

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}

// Advance - move to the next height and persist it
func Advance() (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	next := globalData.height + 1

	err := storage.Update(func(trx storage.Transaction) error {
		trx.PutN(storage.Pool.BlockHeight, heightKey, next)
		return nil
	})
	if nil != err {
		return globalData.height, err
	}

	globalData.height = next
	return next, nil
}
