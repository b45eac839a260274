// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - values written to the open batch, so a transaction can
// read its own writes before commit
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

// a batch is committed or aborted well within a request, so staged
// values only expire if a transaction is abandoned
const (
	stagedLifetime = 2 * time.Minute
	stagedSweep    = 1 * time.Minute
)

type stagedWrites struct {
	*cache.Cache
}

func newCache() Cache {
	return stagedWrites{cache.New(stagedLifetime, stagedSweep)}
}

// Get - a staged value, the empty slice when nothing is staged
func (s stagedWrites) Get(key string) ([]byte, bool) {
	if obj, found := s.Cache.Get(key); found {
		if value, ok := obj.([]byte); ok {
			return value, true
		}
	}
	return []byte{}, false
}

func (s stagedWrites) Set(key string, value []byte) {
	s.Cache.SetDefault(key, value)
}

func (s stagedWrites) Clear() {
	s.Flush()
}
