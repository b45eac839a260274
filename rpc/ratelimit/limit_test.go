// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/rpc/ratelimit"
)

func TestLimitWithinBurst(t *testing.T) {
	limiter := rate.NewLimiter(1, 3)

	start := time.Now()
	for i := 0; i < 3; i++ {
		assert.Nil(t, ratelimit.Limit(limiter), "wrong Limit")
	}
	assert.True(t, time.Since(start) < 500*time.Millisecond, "burst was delayed")
}

func TestLimitDelaysPastBurst(t *testing.T) {
	limiter := rate.NewLimiter(20, 1)

	start := time.Now()
	assert.Nil(t, ratelimit.Limit(limiter), "first Limit")
	assert.Nil(t, ratelimit.Limit(limiter), "second Limit")
	assert.True(t, time.Since(start) >= 25*time.Millisecond, "second request not delayed")
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(1, 0)

	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestLimitRefusesLongDelay(t *testing.T) {
	limiter := rate.NewLimiter(0.1, 1)

	assert.Nil(t, ratelimit.Limit(limiter), "first Limit")

	start := time.Now()
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "second Limit")
	assert.True(t, time.Since(start) < ratelimit.MaximumDelay, "refusal was delayed")
}
