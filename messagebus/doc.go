// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of store events to listeners
//
// sending never blocks: a listener whose buffer is full misses the
// event and the miss is counted
package messagebus
