// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package knowledge - a store of bounded size records scoped by owner
//
// Each record holds a payload, an integer category and the account of
// the owner that inserted it. Records are keyed by one of two
// policies:
//
//   content   - SHA3-256 of the decimal block height at insert time
//   owner     - the owner's account bytes (one record per owner)
//
// The store itself does no locking, its caller must serialise calls.
// Storage, the height sequence and the event sink are supplied by the
// caller through the Table, Sequence and Sink interfaces.
package knowledge
