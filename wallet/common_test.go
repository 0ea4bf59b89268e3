// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/p2pk"
	"github.com/GitCircles/GitCircles-Github/storage"
	"github.com/GitCircles/GitCircles-Github/wallet"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

// valid mainnet addresses
const (
	addressOne = "9fRAWhdxEsTcdb8PhGNrZfwqa65zfkuYHAMmkQLcic1gdLSV5vA"
	addressTwo = "9fZZEJVg7z29LARcVTffLKaxBW19dL1wiX34zSnE2rrWfMd2qcz"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	err := logger.Initialise(logging)
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	// open database
	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = wallet.Initialise()
	if nil != err {
		t.Fatalf("wallet initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	err := wallet.Finalise()
	if nil != err {
		t.Errorf("wallet finalise error: %s", err)
	}

	storage.Finalise()
	logger.Finalise()

	removeFiles()
}

// decode a known good address or fail the test
func mustAddress(t *testing.T, addressBase58Encoded string) p2pk.Address {
	t.Helper()

	address, err := p2pk.AddressFromBase58(addressBase58Encoded)
	if nil != err {
		t.Fatalf("address decode error: %s", err)
	}
	return address
}
