// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
)

func TestParseRepositoryName(t *testing.T) {

	items := []struct {
		fullName string
		owner    string
		name     string
		err      error
	}{
		{"bitmark-inc/bitmarkd", "bitmark-inc", "bitmarkd", nil},
		{"alice/hello-world", "alice", "hello-world", nil},
		{"alice", "", "", fault.InvalidRepositoryName},
		{"alice/", "", "", fault.InvalidRepositoryName},
		{"/repo", "", "", fault.InvalidRepositoryName},
		{"a/b/c", "", "", fault.InvalidRepositoryName},
		{"", "", "", fault.InvalidRepositoryName},
		{"ali:ce/repo", "", "", fault.InvalidRepositoryName},
		{"alice/re:po", "", "", fault.InvalidRepositoryName},
	}

	for i, item := range items {
		owner, name, err := records.ParseRepositoryName(item.fullName)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %v for: %q", i, err, item.err, item.fullName)
		}
		if owner != item.owner || name != item.name {
			t.Errorf("%d: got: %q %q  expected: %q %q", i, owner, name, item.owner, item.name)
		}
	}
}

func TestValidLogin(t *testing.T) {

	valid := []string{"alice", "alice-2", "Octo-Cat", "a", "9lives"}
	for i, login := range valid {
		if !records.ValidLogin(login) {
			t.Errorf("%d: unexpected reject of: %q", i, login)
		}
	}

	invalid := []string{"", "alice smith", "ali:ce", "al/ce", "a_b",
		strings.Repeat("a", 40)}
	for i, login := range invalid {
		if records.ValidLogin(login) {
			t.Errorf("%d: unexpected accept of: %q", i, login)
		}
	}
}

func TestRepositoryJSON(t *testing.T) {
	assert := assert.New(t)

	repository := records.Repository{
		Owner:             "alice",
		Name:              "widget",
		CurrentBaseBranch: "main",
		FirstSync:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		TotalPRs:          0,
	}
	assert.Equal("alice/widget", repository.FullName(), "wrong full name")

	buffer, err := json.Marshal(repository)
	assert.NoError(err, "marshal error")

	// optional fields stay out of the stored form until set
	assert.NotContains(string(buffer), "last_sync", "unset last_sync was stored")
	assert.NotContains(string(buffer), "project_id", "unset project_id was stored")

	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	repository.LastSync = &now
	repository.ProjectID = "widgets_1714000000"
	repository.TotalPRs = 7

	buffer, err = json.Marshal(repository)
	assert.NoError(err, "marshal error")

	var restored records.Repository
	err = json.Unmarshal(buffer, &restored)
	assert.NoError(err, "unmarshal error")
	assert.Equal(repository, restored, "record changed across store encoding")
}
