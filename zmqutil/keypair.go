// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/knowledged/fault"
	"github.com/bitmark-inc/knowledged/util"
)

// CURVE keys are stored as one line: a tag then 32 bytes of hex
type keyKind struct {
	tag     string
	private bool
	invalid error
	mode    os.FileMode
}

const curveKeyLength = 32

var (
	publicKind  = keyKind{tag: "PUBLIC:", private: false, invalid: fault.InvalidPublicKeyFile, mode: 0644}
	privateKind = keyKind{tag: "PRIVATE:", private: true, invalid: fault.InvalidPrivateKeyFile, mode: 0600}
)

func (k keyKind) encode(z85 string) []byte {
	return []byte(k.tag + hex.EncodeToString([]byte(zmq.Z85decode(z85))) + "\n")
}

// MakeKeyPair - write a new CURVE key pair to two files, neither of
// which may already exist
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	for _, name := range []string{publicKeyFileName, privateKeyFileName} {
		if util.EnsureFileExists(name) {
			return fault.KeyFileAlreadyExists
		}
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	if err := ioutil.WriteFile(publicKeyFileName, publicKind.encode(publicKey), publicKind.mode); nil != err {
		return err
	}
	if err := ioutil.WriteFile(privateKeyFileName, privateKind.encode(privateKey), privateKind.mode); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - raw public key from a tagged file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, publicKind)
}

// ReadPrivateKeyFile - raw private key from a tagged file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, privateKind)
}

// ReadPublicKey - raw public key from tagged text
func ReadPublicKey(key string) ([]byte, error) {
	return expectKind(key, publicKind)
}

// ReadPrivateKey - raw private key from tagged text
func ReadPrivateKey(key string) ([]byte, error) {
	return expectKind(key, privateKind)
}

func readKeyFile(fileName string, kind keyKind) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return expectKind(string(data), kind)
}

func expectKind(key string, kind keyKind) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private != kind.private {
		return nil, kind.invalid
	}
	return data, nil
}

// ParseKey - decode tagged hex text, the flag is true for a private key
//
// untagged text is reported as an invalid public key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	for _, kind := range []keyKind{privateKind, publicKind} {
		if !strings.HasPrefix(s, kind.tag) {
			continue
		}
		key, err := hex.DecodeString(s[len(kind.tag):])
		if nil != err {
			return nil, false, err
		}
		if curveKeyLength != len(key) {
			return nil, false, kind.invalid
		}
		return key, kind.private, nil
	}
	return nil, false, fault.InvalidPublicKeyFile
}
