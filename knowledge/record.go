// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/fault"
)

// single byte key variant ++ public key
const ownerLength = 1 + ed25519.PublicKeySize

// Record - one stored item
type Record struct {
	Payload  []byte
	Category int32
	Owner    *account.Account
}

// Pack - serialise a record
//
// layout:
//   varint   payload length
//   bytes    payload
//   int32    category (big endian)
//   bytes    owner account (to end of record)
func (r *Record) Pack() []byte {
	owner := r.Owner.Bytes()

	buffer := make([]byte, binary.MaxVarintLen64, binary.MaxVarintLen64+len(r.Payload)+4+len(owner))
	n := binary.PutUvarint(buffer, uint64(len(r.Payload)))
	buffer = append(buffer[:n], r.Payload...)

	category := make([]byte, 4)
	binary.BigEndian.PutUint32(category, uint32(r.Category))
	buffer = append(buffer, category...)

	return append(buffer, owner...)
}

// RecordFromBytes - decode a packed record
func RecordFromBytes(packed []byte) (*Record, error) {
	length, n := binary.Uvarint(packed)
	if n <= 0 {
		return nil, fault.RecordTruncated
	}
	packed = packed[n:]

	if length > uint64(len(packed)) {
		return nil, fault.RecordPayloadLengthOutOfRange
	}
	payload := make([]byte, length)
	copy(payload, packed[:length])
	packed = packed[length:]

	if len(packed) < 4 {
		return nil, fault.RecordTruncated
	}
	category := int32(binary.BigEndian.Uint32(packed[:4]))
	packed = packed[4:]

	if len(packed) < ownerLength {
		return nil, fault.RecordTruncated
	}
	if len(packed) > ownerLength {
		return nil, fault.RecordHasTrailingData
	}
	owner, err := account.AccountFromBytes(packed)
	if nil != err {
		return nil, err
	}

	return &Record{
		Payload:  payload,
		Category: category,
		Owner:    owner,
	}, nil
}
