// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package github

import (
	"net/http"
	"net/url"
	"os"
	"testing"

	gogithub "github.com/google/go-github/v67/github"

	"github.com/bitmark-inc/logger"
)

// test log directory
const (
	testingDirName = "testing"
)

// valid mainnet address for wallet fetch tests
const (
	addressOne = "9fRAWhdxEsTcdb8PhGNrZfwqa65zfkuYHAMmkQLcic1gdLSV5vA"
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
}

// post test cleanup
func teardown(t *testing.T) {
	logger.Finalise()
	removeFiles()
}

// a client talking to local test servers instead of GitHub
func testClient(t *testing.T, apiURL string, rawURL string) *Client {
	t.Helper()

	apiClient := gogithub.NewClient(nil)

	base, err := url.Parse(apiURL + "/")
	if nil != err {
		t.Fatalf("url parse error: %s", err)
	}
	apiClient.BaseURL = base

	return &Client{
		log:            logger.New("github"),
		client:         apiClient,
		httpClient:     &http.Client{},
		rawContentBase: rawURL,
	}
}
