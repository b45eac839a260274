// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = record key as derived by the configured key policy
//                   content-keyed: 32 byte SHA3-256(decimal block height)
//                   owner-keyed:   account bytes (key variant ++ public key)
// 4. *others*     = byte values of various length
//
// Knowledge:
//
//   K ++ key                   - knowledge records
//                                data: varint(payload length) ++ payload ++ category(int32 BE) ++ owner
//
// Block height:
//
//   H ++ "height"              - current block height
//                                data: big endian uint64 (8 bytes)
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32 (4 bytes)
package storage
