// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/knowledged/chain"
	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/knowledge"
)

const sampleConfiguration = "knowledged.conf.sample"

// write content as the configuration file of a fresh data directory
func setupDirectory(t *testing.T, content []byte) (string, string) {
	dir, err := ioutil.TempDir("", "knowledged")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "knowledged.conf")
	if err := ioutil.WriteFile(name, content, 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write error: %s", err)
	}
	return dir, name
}

func TestSampleConfiguration(t *testing.T) {
	content, err := ioutil.ReadFile(sampleConfiguration)
	if nil != err {
		t.Fatalf("read sample error: %s", err)
	}
	dir, name := setupDirectory(t, content)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name, map[string]string{"chain": "LOCAL"})
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, chain.Local, options.Chain, "chain variable not applied")
	assert.Equal(t, filepath.Join(dir, "data", "knowledge-local.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "certificate not absolute")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "key not absolute")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "wrong listen")

	assert.Equal(t, uint32(2), options.Knowledge.MinimumLength, "wrong minimum")
	assert.Equal(t, uint32(1024), options.Knowledge.MaximumLength, "wrong maximum")
	assert.Equal(t, knowledge.ContentKeyed, options.Knowledge.KeyPolicy, "wrong policy")
	assert.Equal(t, knowledge.CollisionOverwrite, options.Knowledge.Collision, "wrong collision")
	assert.Equal(t, uint64(60), options.Block.Interval, "wrong interval")

	assert.Equal(t, []string{"127.0.0.1:2135"}, options.Publishing.Broadcast, "wrong broadcast")
	assert.Equal(t, "", options.Publishing.PrivateKey, "key set without configuration")

	assert.Equal(t, "info", options.Logging.Levels["main"], "wrong level")

	info, err := os.Stat(filepath.Join(dir, "log"))
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log is not a directory")
}

func TestDefaults(t *testing.T) {
	dir, name := setupDirectory(t, []byte(`return { data_directory = "." }`))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, chain.Bitmark, options.Chain, "wrong default chain")
	assert.Equal(t, filepath.Join(dir, "data", "knowledge-bitmark.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, knowledge.DefaultConfiguration(), options.Knowledge, "wrong knowledge defaults")
	assert.Equal(t, uint64(defaultBlockInterval), options.Block.Interval, "wrong interval")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "wrong log file")
}

func TestOptionalPaths(t *testing.T) {
	config := `return {
    data_directory = ".",
    pidfile = "knowledged.pid",
    publishing = {
        private_key = "publish.private",
        public_key = "/etc/knowledged/publish.public",
    },
}`
	dir, name := setupDirectory(t, []byte(config))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Join(dir, "knowledged.pid"), options.PidFile, "pid file not absolute")
	assert.Equal(t, filepath.Join(dir, "publish.private"), options.Publishing.PrivateKey, "private key not absolute")
	assert.Equal(t, "/etc/knowledged/publish.public", options.Publishing.PublicKey, "absolute path changed")
}

func TestConfigurationErrors(t *testing.T) {
	items := []struct {
		config string
		err    error
	}{
		{`return { data_directory = ".", chain = "other" }`, nil},
		{`return { data_directory = "" }`, nil},
		{`return { data_directory = "/nonexistent/knowledged" }`, nil},
		{`return { data_directory = ".", database = { name = "sub/k.leveldb" } }`, nil},
		{`return { data_directory = ".", knowledge = { key_policy = "random" } }`, fault.InvalidKeyPolicy},
		{`return { data_directory = ".", knowledge = { collision = "ignore" } }`, fault.InvalidCollisionPolicy},
		{`return { data_directory = ".", knowledge = { minimum_length = 20, maximum_length = 10 } }`, fault.ConfigurationLengthInvalid},
	}

	for i, item := range items {
		dir, name := setupDirectory(t, []byte(item.config))

		_, err := getConfiguration(name, nil)
		assert.NotNil(t, err, "%d: error expected", i)
		if nil != item.err {
			assert.Equal(t, item.err, err, "%d: wrong error", i)
		}

		os.RemoveAll(dir)
	}
}
