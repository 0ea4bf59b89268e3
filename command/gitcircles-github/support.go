// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/GitCircles/GitCircles-Github/command/gitcircles-github/credentials"
	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/util"
)

// token resolution order: flag, environment, encrypted credentials
// the credentials file asks for its password on the terminal
func obtainToken(m *metadata, flagToken string) (string, error) {
	if "" != flagToken {
		return flagToken, nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); "" != token {
		return token, nil
	}

	if !util.EnsureFileExists(m.config.CredentialsFile) {
		return "", fault.MissingAccessToken
	}

	store, err := credentials.Load(m.config.CredentialsFile)
	if nil != err {
		return "", err
	}

	password, err := promptCheckPassword()
	if nil != err {
		return "", err
	}

	return store.Token(password)
}
