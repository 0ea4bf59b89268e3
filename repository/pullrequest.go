// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// pullRequestKey - key for one merged pull request
//
// layout: owner '/' name ':' eight byte big endian PR number
func pullRequestKey(owner string, name string, number uint64) []byte {
	return appendUint64([]byte(owner+"/"+name+":"), number)
}

// UpsertPullRequest - store one merged pull request
//
// storing the same pull request number again simply replaces the
// record, so repeated collection runs stay idempotent
func UpsertPullRequest(pullRequest *records.MergedPullRequest) error {
	owner, name, err := records.ParseRepositoryName(pullRequest.Repository)
	if nil != err {
		return err
	}

	data, err := json.Marshal(pullRequest)
	if nil != err {
		return err
	}

	globalData.log.Debugf("store pull request: %s#%d", pullRequest.Repository, pullRequest.Number)

	return storage.Pool.PullRequests.Put(pullRequestKey(owner, name, pullRequest.Number), data)
}

// PullRequestExists - check if a pull request was already collected
func PullRequestExists(owner string, name string, number uint64) (bool, error) {
	return storage.Pool.PullRequests.Has(pullRequestKey(owner, name, number))
}

// PullRequests - fetch all merged pull requests of one repository
//
// records come back in ascending pull request number order
func PullRequests(owner string, name string) ([]records.MergedPullRequest, error) {
	pullRequests := []records.MergedPullRequest{}

	cursor := storage.Pool.PullRequests.NewPrefixCursor([]byte(owner + "/" + name + ":"))
	err := cursor.Map(func(key []byte, value []byte) error {
		pullRequest := records.MergedPullRequest{}
		err := json.Unmarshal(value, &pullRequest)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted pull request record: %q: %s", key, err))
		}
		pullRequests = append(pullRequests, pullRequest)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return pullRequests, nil
}

// PullRequestsForProject - fetch merged pull requests across a project
//
// combines the pull requests of every repository assigned to the
// project, most recently merged first
func PullRequestsForProject(projectId string) ([]records.MergedPullRequest, error) {
	repositories, err := ListForProject(projectId)
	if nil != err {
		return nil, err
	}

	pullRequests := []records.MergedPullRequest{}
	for _, repository := range repositories {
		list, err := PullRequests(repository.Owner, repository.Name)
		if nil != err {
			return nil, err
		}
		pullRequests = append(pullRequests, list...)
	}

	sort.Slice(pullRequests, func(i int, j int) bool {
		return pullRequests[i].MergedAt.After(pullRequests[j].MergedAt)
	})

	return pullRequests, nil
}
