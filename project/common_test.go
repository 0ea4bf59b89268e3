// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/repository"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
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

	err = repository.Initialise()
	if nil != err {
		t.Fatalf("repository initialise error: %s", err)
	}

	err = project.Initialise()
	if nil != err {
		t.Fatalf("project initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	err := project.Finalise()
	if nil != err {
		t.Errorf("project finalise error: %s", err)
	}

	err = repository.Finalise()
	if nil != err {
		t.Errorf("repository finalise error: %s", err)
	}

	storage.Finalise()
	logger.Finalise()

	removeFiles()
}
