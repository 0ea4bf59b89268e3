// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/repository"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	// single repository status
	if "" != c.String("repo") {
		owner, name, err := checkRepositoryName(c.String("repo"))
		if nil != err {
			return err
		}

		repo, err := repository.Get(owner, name)
		if nil != err {
			return err
		}
		if nil == repo {
			return fmt.Errorf("repository: %q is not tracked", owner+"/"+name)
		}

		printRepositoryTable(m.w, []records.Repository{*repo})

		prs, err := repository.PullRequests(owner, name)
		if nil != err {
			return err
		}
		sort.Slice(prs, func(i, j int) bool {
			return prs[i].MergedAt.After(prs[j].MergedAt)
		})
		if len(prs) > count {
			prs = prs[:count]
		}
		if len(prs) > 0 {
			fmt.Fprintf(m.w, "recent merges:\n")
			printPullRequestTable(m.w, prs)
		}

		if m.verbose {
			printJson(m.w, repo)
		}
		return nil
	}

	projectId := c.String("project-id")

	var repositories []records.Repository
	if "" != projectId {
		p, err := project.Get(projectId)
		if nil != err {
			return err
		}
		if nil == p {
			return fmt.Errorf("project: %q: %s", projectId, fault.ProjectNotFound)
		}
		repositories, err = repository.ListForProject(projectId)
		if nil != err {
			return err
		}
	} else {
		repositories, err = repository.List()
		if nil != err {
			return err
		}
	}

	if 0 == len(repositories) {
		fmt.Fprintf(m.w, "no repositories tracked\n")
		return nil
	}

	printRepositoryTable(m.w, repositories)

	if "" != projectId {
		recent, err := repository.PullRequestsForProject(projectId)
		if nil != err {
			return err
		}
		if len(recent) > count {
			recent = recent[:count]
		}
		if len(recent) > 0 {
			fmt.Fprintf(m.w, "recent merges:\n")
			printPullRequestTable(m.w, recent)
		}
	}

	if m.verbose {
		printJson(m.w, repositories)
	}

	return nil
}
