// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling for RPC handlers
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/knowledged/fault"
)

// MaximumDelay - longest a request is held before being refused
const MaximumDelay = 2 * time.Second

// Limit - take one token, waiting up to MaximumDelay for it
//
// a refused request gives its reservation back
func Limit(limiter *rate.Limiter) error {
	now := time.Now()
	r := limiter.ReserveN(now, 1)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.DelayFrom(now)
	if delay > MaximumDelay {
		r.CancelAt(now)
		return fault.RateLimiting
	}

	time.Sleep(delay)
	return nil
}
