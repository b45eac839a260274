// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheight

import (
	"time"

	"github.com/bitmark-inc/logger"
)

type advancer struct {
	log *logger.L
}

// Run - advance the height once per interval
func (a *advancer) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log
	interval := args.(time.Duration)

	log.Info("starting…")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			height, err := Advance()
			if nil != err {
				log.Errorf("advance error: %s", err)
				continue loop
			}
			log.Debugf("height: %d", height)
		}
	}

	log.Info("stopped")
}
