// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package knowledge

import (
	"github.com/bitmark-inc/knowledged/fault"
)

// defaults for an unconfigured store
const (
	DefaultMinimumLength = 2
	DefaultMaximumLength = 1024
	DefaultKeyPolicy     = ContentKeyed
	DefaultCollision     = CollisionOverwrite
)

// Configuration - store limits and key policy
type Configuration struct {
	MinimumLength uint32 `gluamapper:"minimum_length" json:"minimum_length"`
	MaximumLength uint32 `gluamapper:"maximum_length" json:"maximum_length"`
	KeyPolicy     string `gluamapper:"key_policy" json:"key_policy"`
	Collision     string `gluamapper:"collision" json:"collision"`
}

// DefaultConfiguration - a configuration with every field set
func DefaultConfiguration() Configuration {
	return Configuration{
		MinimumLength: DefaultMinimumLength,
		MaximumLength: DefaultMaximumLength,
		KeyPolicy:     DefaultKeyPolicy,
		Collision:     DefaultCollision,
	}
}

// Validate - check the limits are consistent and the policy names are known
func (c *Configuration) Validate() error {
	if c.MaximumLength < c.MinimumLength || 0 == c.MaximumLength {
		return fault.ConfigurationLengthInvalid
	}
	_, err := newKeyPolicy(c.KeyPolicy, c.Collision)
	return err
}
