// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"encoding/json"
	"fmt"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// baseBranchKey - key for one base branch change
//
// layout: owner '/' name ':' eight byte big endian nanosecond timestamp
//
// nanosecond resolution keeps two changes observed within the same
// second on distinct keys
func baseBranchKey(owner string, name string, unixNano int64) []byte {
	return appendUint64([]byte(owner+"/"+name+":"), uint64(unixNano))
}

// RecordBaseBranchChange - append one base branch change to the history
func RecordBaseBranchChange(change *records.BaseBranchChange) error {
	owner, name, err := records.ParseRepositoryName(change.Repository)
	if nil != err {
		return err
	}

	data, err := json.Marshal(change)
	if nil != err {
		return err
	}

	globalData.log.Infof("base branch change: %s: %q to %q", change.Repository, change.OldBranch, change.NewBranch)

	return storage.Pool.BaseBranchHistory.Put(baseBranchKey(owner, name, change.ChangedAt.UnixNano()), data)
}

// BaseBranchHistory - fetch all recorded base branch changes of one repository
//
// records come back in chronological order
func BaseBranchHistory(owner string, name string) ([]records.BaseBranchChange, error) {
	history := []records.BaseBranchChange{}

	cursor := storage.Pool.BaseBranchHistory.NewPrefixCursor([]byte(owner + "/" + name + ":"))
	err := cursor.Map(func(key []byte, value []byte) error {
		change := records.BaseBranchChange{}
		err := json.Unmarshal(value, &change)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted base branch record: %q: %s", key, err))
		}
		history = append(history, change)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return history, nil
}
