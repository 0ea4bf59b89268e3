// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package project

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/repository"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// checkProjectId - reject ids that would break the key layout
func checkProjectId(projectId string) error {
	if "" == projectId || strings.ContainsRune(projectId, ':') {
		return fault.InvalidProjectId
	}
	return nil
}

// GenerateID - derive a project id from a display name
//
// the id is a lowercase slug joined to the current unix time, so ids
// stay readable and two projects with the same name do not collide;
// the slug alphabet cannot produce the key separator
func GenerateID(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		case r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if "" == slug {
		slug = "project"
	}

	return slug + "_" + strconv.FormatInt(time.Now().Unix(), 10)
}

// Upsert - create or replace a project record
func Upsert(project *records.Project) error {
	err := checkProjectId(project.ID)
	if nil != err {
		return err
	}

	data, err := json.Marshal(project)
	if nil != err {
		return err
	}

	globalData.log.Debugf("store project: %s", project.ID)

	return storage.Pool.Projects.Put([]byte(project.ID), data)
}

// Get - fetch one project record
//
// returns nil if the project was never stored
func Get(projectId string) (*records.Project, error) {
	err := checkProjectId(projectId)
	if nil != err {
		return nil, err
	}

	data, err := storage.Pool.Projects.Get([]byte(projectId))
	if nil != err {
		return nil, fmt.Errorf("project: %q: %s", projectId, err)
	}
	if nil == data {
		return nil, nil
	}

	project := &records.Project{}
	err = json.Unmarshal(data, project)
	if nil != err {
		return nil, fault.RecordError(fmt.Sprintf("corrupted project record: %q: %s", projectId, err))
	}

	return project, nil
}

// List - fetch all projects in id order
func List() ([]records.Project, error) {
	projects := []records.Project{}

	cursor := storage.Pool.Projects.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		project := records.Project{}
		err := json.Unmarshal(value, &project)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted project record: %q: %s", key, err))
		}
		projects = append(projects, project)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return projects, nil
}

// Delete - remove one project record
//
// refused while any repository is still assigned to the project or
// any owner row remains, so nothing is ever left dangling
func Delete(projectId string) error {
	project, err := Get(projectId)
	if nil != err {
		return err
	}
	if nil == project {
		return fault.ProjectNotFound
	}

	repositories, err := repository.ListForProject(projectId)
	if nil != err {
		return err
	}
	if len(repositories) > 0 {
		return fault.ProjectStillInUse
	}

	owners, err := Owners(projectId)
	if nil != err {
		return err
	}
	if len(owners) > 0 {
		return fault.ProjectStillInUse
	}

	globalData.log.Infof("delete project: %s", projectId)

	return storage.Pool.Projects.Delete([]byte(projectId))
}
