// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
	logDir      = "testing-log"
)

// SetupTestLogger - send log output to a scratch directory in the
// current working directory
func SetupTestLogger() {
	removeLogFiles()
	_ = os.Mkdir(logDir, 0700)

	config := logger.Configuration{
		Directory: logDir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(config)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeLogFiles()
}

func removeLogFiles() {
	_ = os.RemoveAll(logDir)
}

// Certificate - a freshly generated self signed certificate and key in PEM
func Certificate() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("knowledged test certificate", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(fmt.Sprintf("certificate generation failed: %s", err))
	}
	return string(cert), string(key)
}

// CertificateFiles - write a generated certificate and key into dir
// and return their paths
func CertificateFiles(dir string) (string, string) {
	cert, key := Certificate()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	if err := writeFile(certificateFile, cert, 0666); nil != err {
		panic(err)
	}
	if err := writeFile(keyFile, key, 0600); nil != err {
		panic(err)
	}
	return certificateFile, keyFile
}

func writeFile(name string, content string, mode os.FileMode) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if nil != err {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}

// ListenAddress - a loopback address on a random high port
func ListenAddress() string {
	return fmt.Sprintf("127.0.0.1:%d", 30000+rand.Intn(30000))
}
