// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// test directory
const testingDirName = "testing"

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) string {
	removeFiles()
	err := os.MkdirAll(testingDirName, 0700)
	if nil != err {
		t.Fatalf("mkdir: %s  error: %s", testingDirName, err)
	}
	return filepath.Join(testingDirName, "credentials.json")
}

// end testing
func teardown(t *testing.T) {
	removeFiles()
}

func TestStoreAndRetrieve(t *testing.T) {
	fileName := setup(t)
	defer teardown(t)

	credentials := &Credentials{}
	err := credentials.SetToken(plainToken, "open sesame")
	assert.Nil(t, err, "set token error")

	err = Save(fileName, credentials)
	assert.Nil(t, err, "save error")

	reloaded, err := Load(fileName)
	assert.Nil(t, err, "load error")

	token, err := reloaded.Token("open sesame")
	assert.Nil(t, err, "token error")
	assert.Equal(t, plainToken, token, "wrong token")
}

func TestRetrieveWrongPassword(t *testing.T) {
	fileName := setup(t)
	defer teardown(t)

	credentials := &Credentials{}
	err := credentials.SetToken(plainToken, "open sesame")
	assert.Nil(t, err, "set token error")

	err = Save(fileName, credentials)
	assert.Nil(t, err, "save error")

	reloaded, err := Load(fileName)
	assert.Nil(t, err, "load error")

	_, err = reloaded.Token("close sesame")
	assert.Equal(t, fault.WrongPassword, err, "wrong error")
}

func TestRetrieveEmpty(t *testing.T) {
	credentials := &Credentials{}

	_, err := credentials.Token("any password")
	assert.Equal(t, fault.MissingAccessToken, err, "wrong error")
}

func TestLoadMissingFile(t *testing.T) {
	fileName := setup(t)
	defer teardown(t)

	_, err := Load(fileName)
	assert.NotNil(t, err, "missing file was accepted")
}

// saving twice must keep a backup of the previous file
func TestSaveKeepsBackup(t *testing.T) {
	fileName := setup(t)
	defer teardown(t)

	first := &Credentials{}
	err := first.SetToken(plainToken, "one password")
	assert.Nil(t, err, "set token error")
	err = Save(fileName, first)
	assert.Nil(t, err, "save error")

	second := &Credentials{}
	err = second.SetToken(plainToken, "two password")
	assert.Nil(t, err, "set token error")
	err = Save(fileName, second)
	assert.Nil(t, err, "save error")

	backup, err := Load(fileName + ".bk")
	assert.Nil(t, err, "backup load error")
	assert.Equal(t, first.GitHub.Cipher, backup.GitHub.Cipher, "wrong backup content")

	current, err := Load(fileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, second.GitHub.Cipher, current.GitHub.Cipher, "wrong current content")
}
