// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/knowledged/counter"
	"github.com/bitmark-inc/knowledged/knowledge"
)

// default listener buffer
const (
	defaultSize = 100
)

// BroadcastQueue - deliver each event to every current listener
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan knowledge.Event
	sent      counter.Counter
	dropped   counter.Counter
}

// New - an empty queue with no listeners
func New() *BroadcastQueue {
	return &BroadcastQueue{}
}

// Emit - send to all listeners
func (q *BroadcastQueue) Emit(event knowledge.Event) {
	q.RLock()
	defer q.RUnlock()

	for _, listener := range q.listeners {
		select {
		case listener <- event:
			q.sent.Increment()
		default:
			q.dropped.Increment()
		}
	}
}

// Chan - register a listener, size zero selects the default buffer
func (q *BroadcastQueue) Chan(size int) <-chan knowledge.Event {
	if size <= 0 {
		size = defaultSize
	}
	c := make(chan knowledge.Event, size)

	q.Lock()
	q.listeners = append(q.listeners, c)
	q.Unlock()

	return c
}

// Release - unregister a listener and close its channel
func (q *BroadcastQueue) Release(c <-chan knowledge.Event) {
	q.Lock()
	defer q.Unlock()

	for i, listener := range q.listeners {
		if c == (<-chan knowledge.Event)(listener) {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			close(listener)
			return
		}
	}
}

// Listeners - number of registered listeners
func (q *BroadcastQueue) Listeners() int {
	q.RLock()
	defer q.RUnlock()
	return len(q.listeners)
}

// Sent - events delivered to some listener
func (q *BroadcastQueue) Sent() uint64 {
	return q.sent.Uint64()
}

// Dropped - deliveries missed because a listener was full
func (q *BroadcastQueue) Dropped() uint64 {
	return q.dropped.Uint64()
}
