// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/bitmark-inc/knowledged/account"
)

// EventKind - what caused an event
type EventKind int

// the kinds of event
const (
	Added EventKind = iota
	Listed
	SearchResult
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Listed:
		return "listed"
	case SearchResult:
		return "searchResult"
	default:
		return "unknown"
	}
}

// MarshalText - kind as its name
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event - a notification for the sink
//
// Owner is only set for SearchResult
type Event struct {
	ID       uuid.UUID        `json:"id"`
	Kind     EventKind        `json:"kind"`
	Owner    *account.Account `json:"owner,omitempty"`
	Payloads [][]byte         `json:"-"`
}

// MarshalJSON - payloads are rendered as hex strings
func (e Event) MarshalJSON() ([]byte, error) {
	payloads := make([]string, len(e.Payloads))
	for i, p := range e.Payloads {
		payloads[i] = hex.EncodeToString(p)
	}

	type plain Event
	return json.Marshal(struct {
		plain
		Payloads []string `json:"payloads"`
	}{
		plain:    plain(e),
		Payloads: payloads,
	})
}

// NewAdded - a record was written
func NewAdded(payload []byte) Event {
	return Event{
		ID:       uuid.New(),
		Kind:     Added,
		Payloads: [][]byte{payload},
	}
}

// NewListed - every stored payload was listed
func NewListed(payloads [][]byte) Event {
	return Event{
		ID:       uuid.New(),
		Kind:     Listed,
		Payloads: payloads,
	}
}

// NewSearchResult - the payloads an owner's search selected
func NewSearchResult(owner *account.Account, matches [][]byte) Event {
	return Event{
		ID:       uuid.New(),
		Kind:     SearchResult,
		Owner:    owner,
		Payloads: matches,
	}
}
