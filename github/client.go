// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package github - remote access to the GitHub API
//
// wraps the API client used to list merged pull requests and to read
// the wallet address a user publishes in a profile repository; the
// wallet file itself is read from the public raw content host, not
// through the API, so private profile repositories never work
package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"

	"github.com/bitmark-inc/logger"
)

// fixed locations of the published wallet
const (
	profileRepositoryName = "gitcircles-profile"
	walletFileName        = "P2PK.pub"
	rawContentURL         = "https://raw.githubusercontent.com"
)

// Client - authenticated GitHub access
type Client struct {
	log *logger.L

	client     *github.Client
	httpClient *http.Client

	// overridden in tests
	rawContentBase string
}

// NewClient - build a client around a personal access token
//
// an empty token gives unauthenticated access, enough for public
// repositories at a reduced rate limit
func NewClient(token string) *Client {
	var tc *http.Client
	if "" != token {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{
		log:            logger.New("github"),
		client:         github.NewClient(tc),
		httpClient:     &http.Client{},
		rawContentBase: rawContentURL,
	}
}

// TestToken - check the token by asking who it belongs to
func (c *Client) TestToken(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if nil != err {
		return "", err
	}
	return user.GetLogin(), nil
}
