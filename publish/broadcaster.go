// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/knowledged/knowledge"
	"github.com/bitmark-inc/knowledged/messagebus"
	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/knowledged/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatInterval    = 60 * time.Second
	heartbeatTopic       = "heart"
	queueSize            = 1000
)

type broadcaster struct {
	log       *logger.L
	bus       *messagebus.BroadcastQueue
	queue     <-chan knowledge.Event
	publisher *zmqutil.Publisher
}

func newBroadcaster(log *logger.L, privateKey []byte, publicKey []byte, listen []*util.Connection, bus *messagebus.BroadcastQueue) (*broadcaster, error) {

	publisher, err := zmqutil.NewPublisher(log, broadcasterZapDomain, privateKey, publicKey, listen)
	if nil != err {
		return nil, err
	}

	return &broadcaster{
		log:       log,
		bus:       bus,
		queue:     bus.Chan(queueSize),
		publisher: publisher,
	}, nil
}

// Run - publish every event until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case event := <-brdc.queue:
			topic, data, err := encode(event)
			if nil != err {
				log.Errorf("encode: %s  error: %s", event.ID, err)
				continue loop
			}
			log.Debugf("publish: %s  %s", topic, event.ID)
			brdc.publisher.Send(topic, data)
		case <-heartbeat.C:
			brdc.publisher.Send(heartbeatTopic, []byte(time.Now().UTC().Format(time.RFC3339)))
		}
	}

	brdc.bus.Release(brdc.queue)

	brdc.publisher.Close()

	log.Info("stopped")
}

// topic frame is the event kind
func encode(event knowledge.Event) (string, []byte, error) {
	data, err := json.Marshal(event)
	if nil != err {
		return "", nil, err
	}
	return event.Kind.String(), data, nil
}
