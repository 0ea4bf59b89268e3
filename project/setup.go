// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package project - store for projects and their owners
//
// a project groups tracked repositories under a generated id and
// carries a list of GitHub users with a role each; repositories point
// at projects through their project_id field, so deleting a project
// is refused while any repository or owner row still references it
package project

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// globals for this module
type projectData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData projectData

// Initialise - setup the project store
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("project")
	globalData.log.Info("starting…")

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the project store
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	return nil
}
