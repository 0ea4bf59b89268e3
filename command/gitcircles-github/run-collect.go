// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/github"
	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/repository"
)

func runCollect(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, name, err := checkRepositoryName(c.String("repo"))
	if nil != err {
		return err
	}
	fullName := owner + "/" + name

	days, err := checkDays(c.Int("days"))
	if nil != err {
		return err
	}

	baseBranch := c.String("base-branch")
	if "" == baseBranch {
		baseBranch = m.config.DefaultBaseBranch
	}

	projectId := c.String("project-id")
	if "" != projectId {
		p, err := project.Get(projectId)
		if nil != err {
			return err
		}
		if nil == p {
			return fmt.Errorf("project: %q: %s", projectId, fault.ProjectNotFound)
		}
	}

	token, err := obtainToken(m, c.String("token"))
	if nil != err {
		if fault.MissingAccessToken == err {
			return fmt.Errorf("no token given: use --token, set GITHUB_TOKEN or run: %s auth", c.App.Name)
		}
		return err
	}

	repo, err := repository.Get(owner, name)
	if nil != err {
		return err
	}

	now := time.Now().UTC()
	if nil == repo {
		repo = &records.Repository{
			Owner:             owner,
			Name:              name,
			CurrentBaseBranch: baseBranch,
			FirstSync:         now,
			ProjectID:         projectId,
		}
		fmt.Fprintf(m.w, "tracking new repository: %s\n", fullName)
	} else {
		if "" != projectId {
			repo.ProjectID = projectId
		}
		if baseBranch != repo.CurrentBaseBranch {
			change := records.BaseBranchChange{
				Repository: fullName,
				OldBranch:  repo.CurrentBaseBranch,
				NewBranch:  baseBranch,
				ChangedAt:  now,
			}
			err = repository.RecordBaseBranchChange(&change)
			if nil != err {
				return err
			}
			fmt.Fprintf(m.w, "base branch changed: %q to %q\n", repo.CurrentBaseBranch, baseBranch)
			repo.CurrentBaseBranch = baseBranch
		}
	}

	client := github.NewClient(token)

	fetched, err := client.FetchMergedPullRequests(context.Background(), owner, name, repo.CurrentBaseBranch, days)
	if nil != err {
		return err
	}

	// only record pull requests not already stored
	stored := make([]records.MergedPullRequest, 0, len(fetched))
	for _, pr := range fetched {
		exists, err := repository.PullRequestExists(owner, name, pr.Number)
		if nil != err {
			return err
		}
		if exists {
			continue
		}
		pullRequest := pr
		err = repository.UpsertPullRequest(&pullRequest)
		if nil != err {
			return err
		}
		stored = append(stored, pullRequest)
	}

	syncTime := time.Now().UTC()
	repo.LastSync = &syncTime
	repo.TotalPRs += uint64(len(stored))
	err = repository.Upsert(repo)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "repository: %s\n", fullName)
	fmt.Fprintf(m.w, "fetched: %d merged pull requests\n", len(fetched))
	fmt.Fprintf(m.w, "recorded: %d new\n", len(stored))
	if len(stored) > 0 {
		printPullRequestTable(m.w, stored)
	}

	if m.verbose {
		printJson(m.w, repo)
	}

	return nil
}
