// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the client identity file
package configuration

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/chain"
	"github.com/bitmark-inc/knowledged/fault"
)

// Identity - identity file data format
type Identity struct {
	Description string `yaml:"description" json:"description"`
	Network     string `yaml:"network" json:"network"`
	Connect     string `yaml:"connect" json:"connect"`
	Account     string `yaml:"account" json:"account"`
	PrivateKey  string `yaml:"private_key" json:"-"`
}

// Generate - a new identity with a fresh key for the network
func Generate(network string, connect string, description string) (*Identity, error) {
	if !chain.Valid(network) {
		return nil, fault.InvalidChain
	}
	if "" == connect {
		return nil, fault.MissingConnect
	}

	privateKey, err := account.NewPrivateKey(chain.IsTesting(network), rand.Reader)
	if nil != err {
		return nil, err
	}

	return &Identity{
		Description: description,
		Network:     network,
		Connect:     connect,
		Account:     privateKey.Account().String(),
		PrivateKey:  privateKey.String(),
	}, nil
}

// Load - read and check an identity file
func Load(filename string) (*Identity, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	data, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	identity := &Identity{}
	if err := yaml.Unmarshal(data, identity); nil != err {
		return nil, err
	}

	if _, err := identity.Key(); nil != err {
		return nil, err
	}
	return identity, nil
}

// Save - write the identity, an existing file is never replaced
func (identity *Identity) Save(filename string) error {
	if _, err := os.Stat(filename); nil == err {
		return fault.IdentityFileAlreadyExists
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0700); nil != err {
		return err
	}

	data, err := yaml.Marshal(identity)
	if nil != err {
		return err
	}

	// private key inside so owner only
	return ioutil.WriteFile(filename, data, 0600)
}

// Key - decode the private key and check it matches the network
func (identity *Identity) Key() (*account.PrivateKey, error) {
	if "" == identity.PrivateKey {
		return nil, fault.MissingPrivateKey
	}
	privateKey, err := account.PrivateKeyFromBase58(identity.PrivateKey)
	if nil != err {
		return nil, err
	}
	if err := chain.CheckAccount(identity.Network, privateKey.Test); nil != err {
		return nil, err
	}
	return privateKey, nil
}
