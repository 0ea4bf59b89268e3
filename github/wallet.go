// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/p2pk"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/wallet"
)

// branchPriority - branches to try, in order, without duplicates
func branchPriority(defaultBranch string) []string {
	branches := []string{"main", "master", defaultBranch}

	seen := make(map[string]bool)
	result := make([]string, 0, len(branches))
	for _, branch := range branches {
		if seen[branch] {
			continue
		}
		seen[branch] = true
		result = append(result, branch)
	}
	return result
}

// FetchWalletAddress - read the wallet a user currently publishes
//
// looks for the file P2PK.pub in the user's gitcircles-profile
// repository, trying the main and master branches before the
// repository's own default branch; a missing repository or a missing
// file on every branch is not an error, it just means no wallet
func (c *Client) FetchWalletAddress(ctx context.Context, login string) (*wallet.FetchOutcome, error) {

	repoFull := login + "/" + profileRepositoryName

	repo, apiResponse, err := c.client.Repositories.Get(ctx, login, profileRepositoryName)
	if nil != err {
		if nil != apiResponse {
			switch apiResponse.StatusCode {
			case http.StatusNotFound:
				// no profile repository means no wallet configured
				c.log.Debugf("no profile repository: %s", repoFull)
				return nil, nil
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, fault.ProfileRepositoryNotAccessible
			}
		}
		return nil, err
	}

	defaultBranch := repo.GetDefaultBranch()
	if "" == defaultBranch {
		defaultBranch = "main"
	}

	for _, branch := range branchPriority(defaultBranch) {

		url := c.rawContentBase + "/" + login + "/" + profileRepositoryName + "/" + branch + "/" + walletFileName

		request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if nil != err {
			return nil, err
		}

		response, err := c.httpClient.Do(request)
		if nil != err {
			return nil, fmt.Errorf("wallet fetch: %s: %s", repoFull, err)
		}

		switch response.StatusCode {

		case http.StatusOK:
			content, err := io.ReadAll(response.Body)
			response.Body.Close()
			if nil != err {
				return nil, fmt.Errorf("wallet fetch: %s: %s", repoFull, err)
			}

			address, err := p2pk.AddressFromBase58(strings.TrimSpace(string(content)))
			if nil != err {
				return nil, err
			}

			c.log.Infof("wallet found: %s branch: %s", repoFull, branch)

			return &wallet.FetchOutcome{
				Address: address,
				Source: records.WalletSource{
					Type:   records.SourceGitHubProfileRepo,
					Login:  login,
					Branch: branch,
				},
			}, nil

		case http.StatusNotFound:
			// not on this branch, try the next one
			response.Body.Close()

		case http.StatusUnauthorized, http.StatusForbidden:
			response.Body.Close()
			return nil, fault.ProfileRepositoryNotAccessible

		default:
			response.Body.Close()
			return nil, fault.ProcessError(fmt.Sprintf("wallet fetch: %s: unexpected status: %d", repoFull, response.StatusCode))
		}
	}

	// the file exists on no branch
	c.log.Debugf("no wallet file: %s", repoFull)
	return nil, nil
}
