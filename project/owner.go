// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package project

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// ownerKey - key for one project owner row
//
// layout: project id ':' username
func ownerKey(projectId string, username string) []byte {
	return []byte(projectId + ":" + username)
}

// checkRole - only the fixed role set is storable
func checkRole(role string) error {
	switch role {
	case records.RoleOwner, records.RoleAdmin, records.RoleMember:
		return nil
	default:
		return fault.InvalidOwnerRole
	}
}

// AddOwner - add one GitHub user to a project
//
// the project must already exist and the user must not already be an
// owner; use RemoveOwner first to change a role
func AddOwner(projectId string, username string, role string) error {
	err := checkProjectId(projectId)
	if nil != err {
		return err
	}
	if !records.ValidLogin(username) {
		return fault.InvalidLogin
	}
	err = checkRole(role)
	if nil != err {
		return err
	}

	project, err := Get(projectId)
	if nil != err {
		return err
	}
	if nil == project {
		return fault.ProjectNotFound
	}

	key := ownerKey(projectId, username)

	here, err := storage.Pool.ProjectOwners.Has(key)
	if nil != err {
		return err
	}
	if here {
		return fault.OwnerAlreadyPresent
	}

	owner := records.ProjectOwner{
		ProjectID:      projectId,
		GitHubUsername: username,
		Role:           role,
		AddedAt:        time.Now().UTC(),
	}

	data, err := json.Marshal(owner)
	if nil != err {
		return err
	}

	globalData.log.Infof("add owner: %s to project: %s role: %s", username, projectId, role)

	return storage.Pool.ProjectOwners.Put(key, data)
}

// RemoveOwner - remove one GitHub user from a project
func RemoveOwner(projectId string, username string) error {
	err := checkProjectId(projectId)
	if nil != err {
		return err
	}

	key := ownerKey(projectId, username)

	here, err := storage.Pool.ProjectOwners.Has(key)
	if nil != err {
		return err
	}
	if !here {
		return fault.OwnerNotFound
	}

	globalData.log.Infof("remove owner: %s from project: %s", username, projectId)

	return storage.Pool.ProjectOwners.Delete(key)
}

// Owners - fetch all owner rows of one project
func Owners(projectId string) ([]records.ProjectOwner, error) {
	err := checkProjectId(projectId)
	if nil != err {
		return nil, err
	}

	owners := []records.ProjectOwner{}

	cursor := storage.Pool.ProjectOwners.NewPrefixCursor([]byte(projectId + ":"))
	err = cursor.Map(func(key []byte, value []byte) error {
		owner := records.ProjectOwner{}
		err := json.Unmarshal(value, &owner)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted owner record: %q: %s", key, err))
		}
		owners = append(owners, owner)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return owners, nil
}

// ProjectsForOwner - fetch all projects one GitHub user belongs to
func ProjectsForOwner(username string) ([]records.Project, error) {
	if !records.ValidLogin(username) {
		return nil, fault.InvalidLogin
	}

	projectIds := []string{}

	cursor := storage.Pool.ProjectOwners.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		owner := records.ProjectOwner{}
		err := json.Unmarshal(value, &owner)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted owner record: %q: %s", key, err))
		}
		if username == owner.GitHubUsername {
			projectIds = append(projectIds, owner.ProjectID)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	projects := []records.Project{}
	for _, projectId := range projectIds {
		project, err := Get(projectId)
		if nil != err {
			return nil, err
		}
		if nil != project {
			projects = append(projects, *project)
		}
	}

	return projects, nil
}
