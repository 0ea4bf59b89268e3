// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package repository - store for tracked repositories
//
// holds the repository records themselves, their merged pull requests
// and the history of base branch changes; all writes validate the
// repository identity first so every stored key keeps the
// "owner/name" prefix structure intact
package repository

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// globals for this module
type repositoryData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData repositoryData

// Initialise - setup the repository store
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("repository")
	globalData.log.Info("starting…")

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the repository store
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
