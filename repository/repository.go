// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// repositoryKey - key for a repository record
//
// layout: owner '/' name
func repositoryKey(owner string, name string) []byte {
	return []byte(owner + "/" + name)
}

// appendUint64 - append a fixed size big endian number to a key
//
// the fixed width keeps lexicographic and numeric ordering identical
func appendUint64(key []byte, number uint64) []byte {
	numberBuffer := make([]byte, 8)
	binary.BigEndian.PutUint64(numberBuffer, number)
	return append(key, numberBuffer...)
}

// Upsert - create or replace a repository record
func Upsert(repository *records.Repository) error {
	_, _, err := records.ParseRepositoryName(repository.FullName())
	if nil != err {
		return err
	}

	data, err := json.Marshal(repository)
	if nil != err {
		return err
	}

	globalData.log.Debugf("store repository: %s", repository.FullName())

	return storage.Pool.Repositories.Put(repositoryKey(repository.Owner, repository.Name), data)
}

// Get - fetch one repository record
//
// returns nil if the repository was never stored
func Get(owner string, name string) (*records.Repository, error) {
	key := repositoryKey(owner, name)

	data, err := storage.Pool.Repositories.Get(key)
	if nil != err {
		return nil, fmt.Errorf("repository: %q: %s", key, err)
	}
	if nil == data {
		return nil, nil
	}

	repository := &records.Repository{}
	err = json.Unmarshal(data, repository)
	if nil != err {
		return nil, fault.RecordError(fmt.Sprintf("corrupted repository record: %q: %s", key, err))
	}

	return repository, nil
}

// List - fetch all tracked repositories in key order
func List() ([]records.Repository, error) {
	repositories := []records.Repository{}

	cursor := storage.Pool.Repositories.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		repository := records.Repository{}
		err := json.Unmarshal(value, &repository)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted repository record: %q: %s", key, err))
		}
		repositories = append(repositories, repository)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return repositories, nil
}

// ListForProject - fetch all repositories assigned to one project
func ListForProject(projectId string) ([]records.Repository, error) {
	if "" == projectId {
		return nil, fault.InvalidProjectId
	}

	all, err := List()
	if nil != err {
		return nil, err
	}

	repositories := []records.Repository{}
	for _, repository := range all {
		if projectId == repository.ProjectID {
			repositories = append(repositories, repository)
		}
	}

	return repositories, nil
}
