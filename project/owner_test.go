// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/project"
	"github.com/GitCircles/GitCircles-Github/records"
)

func TestOwnerAddAndList(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeProject(t, "alpha_1700000000", "Alpha")

	err := project.AddOwner("alpha_1700000000", "zed", records.RoleMember)
	assert.NoError(t, err, "add owner error")
	err = project.AddOwner("alpha_1700000000", "amy", records.RoleOwner)
	assert.NoError(t, err, "add owner error")

	owners, err := project.Owners("alpha_1700000000")
	assert.NoError(t, err, "owners error")
	assert.Equal(t, 2, len(owners), "wrong owner count")

	// key order, i.e. alphabetical by username
	assert.Equal(t, "amy", owners[0].GitHubUsername, "wrong order")
	assert.Equal(t, records.RoleOwner, owners[0].Role, "wrong role")
	assert.Equal(t, "zed", owners[1].GitHubUsername, "wrong order")
	assert.Equal(t, records.RoleMember, owners[1].Role, "wrong role")

	for _, owner := range owners {
		assert.Equal(t, "alpha_1700000000", owner.ProjectID, "wrong project")
		assert.False(t, owner.AddedAt.IsZero(), "missing added time")
	}
}

func TestOwnerAddRejections(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeProject(t, "alpha_1700000000", "Alpha")

	err := project.AddOwner("beta_1700000001", "amy", records.RoleOwner)
	assert.Equal(t, fault.ProjectNotFound, err, "wrong error")

	err = project.AddOwner("alpha_1700000000", "amy", "superuser")
	assert.Equal(t, fault.InvalidOwnerRole, err, "wrong error")

	err = project.AddOwner("alpha_1700000000", "not a login", records.RoleOwner)
	assert.Equal(t, fault.InvalidLogin, err, "wrong error")

	err = project.AddOwner("alpha_1700000000", "amy", records.RoleOwner)
	assert.NoError(t, err, "add owner error")
	err = project.AddOwner("alpha_1700000000", "amy", records.RoleMember)
	assert.Equal(t, fault.OwnerAlreadyPresent, err, "wrong error")
}

func TestOwnerRemove(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeProject(t, "alpha_1700000000", "Alpha")

	err := project.AddOwner("alpha_1700000000", "amy", records.RoleOwner)
	assert.NoError(t, err, "add owner error")

	err = project.RemoveOwner("alpha_1700000000", "amy")
	assert.NoError(t, err, "remove owner error")

	owners, err := project.Owners("alpha_1700000000")
	assert.NoError(t, err, "owners error")
	assert.Equal(t, 0, len(owners), "owner survived remove")

	err = project.RemoveOwner("alpha_1700000000", "amy")
	assert.Equal(t, fault.OwnerNotFound, err, "wrong error")
}

func TestOwnerProjectIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	// ids where one is a string prefix of the other
	storeProject(t, "team_1", "One")
	storeProject(t, "team_10", "Ten")

	err := project.AddOwner("team_1", "amy", records.RoleOwner)
	assert.NoError(t, err, "add owner error")
	err = project.AddOwner("team_10", "bob", records.RoleOwner)
	assert.NoError(t, err, "add owner error")

	owners, err := project.Owners("team_1")
	assert.NoError(t, err, "owners error")
	assert.Equal(t, 1, len(owners), "prefix leak between projects")
	assert.Equal(t, "amy", owners[0].GitHubUsername, "wrong owner")

	owners, err = project.Owners("team_10")
	assert.NoError(t, err, "owners error")
	assert.Equal(t, 1, len(owners), "prefix leak between projects")
	assert.Equal(t, "bob", owners[0].GitHubUsername, "wrong owner")
}

func TestProjectsForOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeProject(t, "alpha_1700000000", "Alpha")
	storeProject(t, "beta_1700000001", "Beta")
	storeProject(t, "gamma_1700000002", "Gamma")

	err := project.AddOwner("alpha_1700000000", "amy", records.RoleOwner)
	assert.NoError(t, err, "add owner error")
	err = project.AddOwner("gamma_1700000002", "amy", records.RoleMember)
	assert.NoError(t, err, "add owner error")
	err = project.AddOwner("beta_1700000001", "bob", records.RoleOwner)
	assert.NoError(t, err, "add owner error")

	projects, err := project.ProjectsForOwner("amy")
	assert.NoError(t, err, "projects for owner error")
	assert.Equal(t, 2, len(projects), "wrong project count")
	assert.Equal(t, "Alpha", projects[0].Name, "wrong order")
	assert.Equal(t, "Gamma", projects[1].Name, "wrong order")

	projects, err = project.ProjectsForOwner("carol")
	assert.NoError(t, err, "projects for owner error")
	assert.Equal(t, 0, len(projects), "expected no projects")

	_, err = project.ProjectsForOwner("not a login")
	assert.Equal(t, fault.InvalidLogin, err, "wrong error")
}
