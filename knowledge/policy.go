// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/fault"
)

// key policy names
const (
	ContentKeyed = "content"
	OwnerKeyed   = "owner"
)

// collision policy names, only used by the content keyed policy
const (
	CollisionReject    = "reject"
	CollisionOverwrite = "overwrite"
)

// KeyPolicy - derive the table key of a new record
type KeyPolicy interface {
	Name() string
	Key(owner *account.Account, height uint64) []byte
	Overwrites() bool
}

type contentKeyed struct {
	overwrite bool
}

type ownerKeyed struct{}

func newKeyPolicy(name string, collision string) (KeyPolicy, error) {
	switch name {
	case ContentKeyed, "":
		switch collision {
		case CollisionOverwrite, "":
			return &contentKeyed{overwrite: true}, nil
		case CollisionReject:
			return &contentKeyed{overwrite: false}, nil
		default:
			return nil, fault.InvalidCollisionPolicy
		}
	case OwnerKeyed:
		return &ownerKeyed{}, nil
	default:
		return nil, fault.InvalidKeyPolicy
	}
}

func (p *contentKeyed) Name() string {
	return ContentKeyed
}

// Key - hash of the height rendered as decimal text
//
// every insert within the same block produces the same key
func (p *contentKeyed) Key(owner *account.Account, height uint64) []byte {
	digest := sha3.Sum256([]byte(strconv.FormatUint(height, 10)))
	return digest[:]
}

func (p *contentKeyed) Overwrites() bool {
	return p.overwrite
}

func (p *ownerKeyed) Name() string {
	return OwnerKeyed
}

func (p *ownerKeyed) Key(owner *account.Account, height uint64) []byte {
	return owner.Bytes()
}

// a later insert by the same owner always replaces the earlier one
func (p *ownerKeyed) Overwrites() bool {
	return true
}
