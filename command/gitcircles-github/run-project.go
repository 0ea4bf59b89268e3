// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/repository"
)

func runProjectCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProjectName(c.Args().Get(0))
	if nil != err {
		return err
	}

	projectId := c.String("id")
	if "" == projectId {
		projectId = project.GenerateID(name)
	}

	existing, err := project.Get(projectId)
	if nil != err {
		return err
	}
	if nil != existing {
		return fmt.Errorf("project: %q already exists", projectId)
	}

	now := time.Now().UTC()
	p := records.Project{
		ID:          projectId,
		Name:        name,
		Description: c.String("description"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = project.Upsert(&p)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "created project: %s\n", projectId)

	if m.verbose {
		printJson(m.w, p)
	}

	return nil
}

func runProjectList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projects, err := project.List()
	if nil != err {
		return err
	}

	if 0 == len(projects) {
		fmt.Fprintf(m.w, "no projects\n")
		return nil
	}

	printProjectTable(m.w, projects)

	if m.verbose {
		printJson(m.w, projects)
	}

	return nil
}

func runProjectShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projectId, err := checkProjectId(c.Args().Get(0))
	if nil != err {
		return err
	}

	p, err := project.Get(projectId)
	if nil != err {
		return err
	}
	if nil == p {
		return fmt.Errorf("project: %q: %s", projectId, fault.ProjectNotFound)
	}

	printProjectTable(m.w, []records.Project{*p})

	repositories, err := repository.ListForProject(projectId)
	if nil != err {
		return err
	}
	if len(repositories) > 0 {
		fmt.Fprintf(m.w, "repositories:\n")
		printRepositoryTable(m.w, repositories)
	}

	owners, err := project.Owners(projectId)
	if nil != err {
		return err
	}
	if len(owners) > 0 {
		fmt.Fprintf(m.w, "owners:\n")
		printOwnerTable(m.w, owners)
	}

	if m.verbose {
		type projectDisplay struct {
			Project      *records.Project       `json:"project"`
			Repositories []records.Repository   `json:"repositories"`
			Owners       []records.ProjectOwner `json:"owners"`
		}
		printJson(m.w, projectDisplay{
			Project:      p,
			Repositories: repositories,
			Owners:       owners,
		})
	}

	return nil
}

func runProjectDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projectId, err := checkProjectId(c.Args().Get(0))
	if nil != err {
		return err
	}

	// owners do not block deletion, repositories do; check the
	// repositories first so a refused delete removes nothing
	repositories, err := repository.ListForProject(projectId)
	if nil != err {
		return err
	}
	if len(repositories) > 0 {
		return fmt.Errorf("project: %q has %d repositories, detach them first", projectId, len(repositories))
	}

	owners, err := project.Owners(projectId)
	if nil != err {
		return err
	}
	for _, o := range owners {
		err = project.RemoveOwner(projectId, o.GitHubUsername)
		if nil != err {
			return err
		}
	}

	err = project.Delete(projectId)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "deleted project: %s\n", projectId)
	if len(owners) > 0 {
		fmt.Fprintf(m.w, "removed owners: %d\n", len(owners))
	}

	return nil
}

func runProjectAddOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projectId, err := checkProjectId(c.Args().Get(0))
	if nil != err {
		return err
	}

	username, err := checkLogin(c.Args().Get(1))
	if nil != err {
		return err
	}

	role, err := checkOwnerRole(c.String("role"))
	if nil != err {
		return err
	}

	err = project.AddOwner(projectId, username, role)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "added owner: %s to project: %s as %s\n", username, projectId, role)

	return nil
}

func runProjectRemoveOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projectId, err := checkProjectId(c.Args().Get(0))
	if nil != err {
		return err
	}

	username, err := checkLogin(c.Args().Get(1))
	if nil != err {
		return err
	}

	err = project.RemoveOwner(projectId, username)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "removed owner: %s from project: %s\n", username, projectId)

	return nil
}
