// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package github

import (
	"context"
	"errors"
	"time"

	"github.com/google/go-github/v67/github"

	"github.com/GitCircles/GitCircles-Github/records"
)

// placeholders for fields GitHub may omit
const (
	missingTitle  = "No title"
	missingAuthor = "unknown"
	missingSHA    = "unknown"
)

// FetchMergedPullRequests - list merged pull requests of one repository
//
// walks the closed pull requests against the given base branch and
// keeps those that were actually merged; daysBack limits the result to
// pull requests merged within that many days, zero keeps everything;
// a rate limited request waits out the limit and retries
func (c *Client) FetchMergedPullRequests(ctx context.Context, owner string, name string, baseBranch string, daysBack int) ([]records.MergedPullRequest, error) {

	cutoff := time.Time{}
	if daysBack > 0 {
		cutoff = time.Now().UTC().AddDate(0, 0, -daysBack)
	}

	opts := &github.PullRequestListOptions{
		State:       "closed",
		Base:        baseBranch,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	merged := []records.MergedPullRequest{}

	for {
		c.log.Debugf("fetch pull requests: %s/%s page: %d", owner, name, opts.Page)

		pullRequests, response, err := c.client.PullRequests.List(ctx, owner, name, opts)
		if nil != err {
			var rateLimitErr *github.RateLimitError
			if errors.As(err, &rateLimitErr) {
				waitDuration := time.Until(rateLimitErr.Rate.Reset.Time) + time.Second
				c.log.Warnf("rate limited, waiting: %s", waitDuration)

				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(waitDuration):
					continue
				}
			}
			return nil, err
		}

		for _, pullRequest := range pullRequests {

			// closed but never merged
			mergedAt := pullRequest.GetMergedAt()
			if mergedAt.IsZero() {
				continue
			}
			if !cutoff.IsZero() && mergedAt.Time.Before(cutoff) {
				continue
			}

			title := pullRequest.GetTitle()
			if "" == title {
				title = missingTitle
			}
			author := pullRequest.GetUser().GetLogin()
			if "" == author {
				author = missingAuthor
			}
			sha := pullRequest.GetMergeCommitSHA()
			if "" == sha {
				sha = missingSHA
			}

			merged = append(merged, records.MergedPullRequest{
				Number:         uint64(pullRequest.GetNumber()),
				Title:          title,
				Author:         author,
				MergedAt:       mergedAt.Time,
				BaseBranch:     pullRequest.GetBase().GetRef(),
				MergeCommitSHA: sha,
				Repository:     owner + "/" + name,
			})
		}

		if 0 == response.NextPage {
			break
		}
		opts.Page = response.NextPage
	}

	c.log.Infof("found %d merged pull requests: %s/%s", len(merged), owner, name)

	return merged, nil
}
