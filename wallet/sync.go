// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GitCircles/GitCircles-Github/p2pk"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// FetchOutcome - one wallet address discovered on the platform
type FetchOutcome struct {
	Address p2pk.Address
	Source  records.WalletSource
}

// Fetcher - capability to read the wallet a user currently publishes
//
// a nil outcome with a nil error means the user publishes no wallet;
// an error means the lookup itself failed and nothing can be said
type Fetcher interface {
	FetchWalletAddress(ctx context.Context, login string) (*FetchOutcome, error)
}

// SyncResult - outcome of one sync pass
type SyncResult struct {
	Current  *p2pk.Address
	Previous *p2pk.Address
	Changed  bool
	Source   records.WalletSource
}

// Sync - bring the stored wallet of one login up to date
//
// fetches the currently published address, compares it to the stored
// one and, only if they differ or no wallet was stored yet, commits
// the current record, a history entry and a reverse index link in one
// atomic transaction; an unchanged address writes nothing at all
//
// a fetch or read failure aborts the pass before any write is queued
func Sync(ctx context.Context, fetcher Fetcher, platform string, login string) (*SyncResult, error) {
	err := checkIdentity(platform, login)
	if nil != err {
		return nil, err
	}

	// one sync at a time per login
	lock := lockFor(platform, login)
	lock.Lock()
	defer lock.Unlock()

	outcome, err := fetcher.FetchWalletAddress(ctx, login)
	if nil != err {
		return nil, err
	}

	previous, err := Get(platform, login)
	if nil != err {
		return nil, err
	}

	result := &SyncResult{}
	if nil != previous {
		previousAddress := previous.Address
		result.Previous = &previousAddress
	}

	if nil == outcome {
		globalData.log.Infof("no wallet published: %s:%s", platform, login)
		return result, nil
	}

	currentAddress := outcome.Address
	result.Current = &currentAddress
	result.Source = outcome.Source
	result.Changed = nil == previous || previous.Address != currentAddress

	if !result.Changed {
		globalData.log.Debugf("wallet unchanged: %s:%s", platform, login)
		return result, nil
	}

	now := time.Now().UTC()

	walletRecord, err := json.Marshal(records.UserWallet{
		Login:    login,
		Platform: platform,
		Address:  currentAddress,
		Source:   outcome.Source,
		SyncedAt: now,
	})
	if nil != err {
		return nil, err
	}

	historyRecord, err := json.Marshal(records.WalletHistoryEntry{
		Login:      login,
		Platform:   platform,
		Address:    currentAddress,
		Source:     outcome.Source,
		RecordedAt: now,
	})
	if nil != err {
		return nil, err
	}

	linkRecord, err := json.Marshal(records.WalletLoginLink{
		Wallet:   currentAddress,
		Platform: platform,
		Login:    login,
		LinkedAt: now,
	})
	if nil != err {
		return nil, err
	}

	// all three records commit together or not at all
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	trx.Put(storage.Pool.UserWallets, walletKey(platform, login), walletRecord)
	trx.Put(storage.Pool.UserWalletHistory, historyKey(platform, login, now.UnixNano()), historyRecord)
	trx.Put(storage.Pool.WalletIndex, linkKey(currentAddress, platform, login), linkRecord)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	globalData.log.Infof("wallet updated: %s:%s address: %s", platform, login, currentAddress)

	return result, nil
}
