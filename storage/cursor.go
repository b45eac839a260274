// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/knowledged/fault"
)

// FetchCursor - position within a single pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - a cursor covering the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // included
			Limit: p.limit,          // excluded
		},
	}
}

// Fetch - the next page of at most count elements
//
// repeated calls page through the pool, an empty page means the end
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(count, func(e Element) error {
		results = append(results, e)
		return nil
	})
	if nil != err {
		return nil, err
	}

	if n := len(results); n > 0 {
		// smallest key after the last one returned
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, nil
}

// Map - run a function on every element from the cursor onwards
//
// the first error from f stops the scan and is returned
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	return cursor.each(0, func(e Element) error {
		return f(e.Key, e.Value)
	})
}

// each - visit up to max elements, zero means all of them
//
// elements are copies so they remain valid after the iterator moves
func (cursor *FetchCursor) each(max int, visit func(Element) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == cursor.pool.dataAccess {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	n := 0
	for iter.Next() {
		key := iter.Key()[1:] // strip the pool prefix
		value := iter.Value()

		e := Element{
			Key:   append([]byte{}, key...),
			Value: append([]byte{}, value...),
		}
		if err := visit(e); nil != err {
			return err
		}

		n += 1
		if max > 0 && n >= max {
			break
		}
	}
	return iter.Error()
}
