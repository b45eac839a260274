// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small helpers shared by the daemon and client
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative path is taken to be below directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// EnsureFileExists - true if anything exists with the name
//
// used to refuse overwriting certificates and key files
func EnsureFileExists(name string) bool {
	_, err := os.Lstat(name)
	return !os.IsNotExist(err)
}
