// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/knowledged/account"
)

// method names as they appear in the signed message
const (
	insertMethod = "Knowledge.Insert"
	searchMethod = "Knowledge.Search"
	listMethod   = "Knowledge.List"
)

// Bytes - binary data carried as hex in JSON
type Bytes []byte

// MarshalText - convert to hex
func (b Bytes) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert from hex
func (b *Bytes) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}

// InsertMessage - the bytes an owner signs to insert a payload
func InsertMessage(owner *account.Account, payload []byte, category int32, timestamp uint64) []byte {
	return message(insertMethod, owner, categorised(payload, category), timestamp)
}

// SearchMessage - the bytes an owner signs to search their records
func SearchMessage(owner *account.Account, pattern []byte, category int32, timestamp uint64) []byte {
	return message(searchMethod, owner, categorised(pattern, category), timestamp)
}

// ListMessage - the bytes an owner signs to list all records
func ListMessage(owner *account.Account, timestamp uint64) []byte {
	return message(listMethod, owner, nil, timestamp)
}

// method ++ 0x00 ++ owner ++ body ++ varint(timestamp)
func message(method string, owner *account.Account, body []byte, timestamp uint64) []byte {
	buffer := make([]byte, 0, len(method)+1+64+len(body)+binary.MaxVarintLen64)
	buffer = append(buffer, method...)
	buffer = append(buffer, 0x00)
	if nil != owner {
		buffer = append(buffer, owner.Bytes()...)
	}
	buffer = append(buffer, body...)

	varint := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(varint, timestamp)
	return append(buffer, varint[:n]...)
}

// varint(len data) ++ data ++ int32 BE category
func categorised(data []byte, category int32) []byte {
	varint := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(varint, uint64(len(data)))

	buffer := make([]byte, 0, n+len(data)+4)
	buffer = append(buffer, varint[:n]...)
	buffer = append(buffer, data...)

	c := make([]byte, 4)
	binary.BigEndian.PutUint32(c, uint32(category))
	return append(buffer, c...)
}
