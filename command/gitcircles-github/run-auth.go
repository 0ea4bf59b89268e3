// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/command/gitcircles-github/credentials"
	"github.com/GitCircles/GitCircles-Github/github"
)

func runAuth(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	token := c.String("token")
	if "" == token {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if "" == token {
		var err error
		token, err = promptToken()
		if nil != err {
			return err
		}
	}

	// verify the token before storing it
	client := github.NewClient(token)
	login, err := client.TestToken(context.Background())
	if nil != err {
		return fmt.Errorf("token check failed: %s", err)
	}
	fmt.Fprintf(m.w, "authenticated as: %s\n", login)

	password, err := promptNewPassword()
	if nil != err {
		return err
	}

	store := &credentials.Credentials{}
	err = store.SetToken(token, password)
	if nil != err {
		return err
	}

	err = credentials.Save(m.config.CredentialsFile, store)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "token stored: %s\n", m.config.CredentialsFile)

	return nil
}
