// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON
// RPC requests from clients requiring knowledged services
//
// the listener accepts TLS connections and serves the Knowledge and
// Node services registered by the server package
package rpc
