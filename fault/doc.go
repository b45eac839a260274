// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - every error the store, daemon and client return
//
// errors are constants of a small set of string types so callers can
// compare with == or classify with the IsErr functions; an error
// crossing JSON-RPC arrives as its message text
package fault
