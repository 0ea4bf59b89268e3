// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - store and sync service for self published wallets
//
// a user publishes a wallet address in a profile repository; sync
// fetches the currently published address, compares it to the stored
// one and records any change in three places at once: the current
// wallet, the append-only history and the reverse index from address
// to login; the reverse index is additive, links are never removed,
// so it always answers which logins have ever claimed an address
package wallet

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// globals for this module
type walletData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// serialise the fetch-compare-commit window per login
	syncLock map[string]*sync.Mutex

	// set once during initialise
	initialised bool
}

// global data
var globalData walletData

// Initialise - setup the wallet store
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("wallet")
	globalData.log.Info("starting…")

	globalData.syncLock = make(map[string]*sync.Mutex)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the wallet store
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

// lockFor - the mutex serialising syncs of one login
func lockFor(platform string, login string) *sync.Mutex {
	globalData.Lock()
	defer globalData.Unlock()

	key := platform + ":" + login
	m, ok := globalData.syncLock[key]
	if !ok {
		m = new(sync.Mutex)
		globalData.syncLock[key] = m
	}
	return m
}
