// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS configuration from PEM certificate data
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/logger"
)

// Get - verify a PEM certificate and key pair and return a server
// TLS configuration with the certificate's SHA3-256 fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	// FreeBSD: openssl x509 -outform DER -in knowledged-local-rpc.crt | sha3sum -a 256
	fin = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// GetFiles - as Get but reading the PEM data from files
func GetFiles(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, util.FingerprintBytes, error) {
	var fin util.FingerprintBytes

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s failed to read certificate: %q  error: %s", name, certificateFile, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s failed to read private key: %q  error: %s", name, keyFile, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}
