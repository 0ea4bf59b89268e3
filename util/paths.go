// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small filesystem helpers shared by configuration
// loading and the command line programs
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a possibly relative path against a directory
//
// absolute paths pass through untouched, everything is cleaned
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(directory, filePath))
}

// EnsureFileExists - true if the path names an existing file
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
