// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
	"github.com/GitCircles/GitCircles-Github/wallet"
	"github.com/GitCircles/GitCircles-Github/wallet/mocks"
)

// a fetcher that always finds the given address
func publishedFetcher(t *testing.T, ctl *gomock.Controller, login string, addressBase58Encoded string) *mocks.MockFetcher {
	t.Helper()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().
		FetchWalletAddress(gomock.Any(), login).
		Return(&wallet.FetchOutcome{
			Address: mustAddress(t, addressBase58Encoded),
			Source: records.WalletSource{
				Type:   records.SourceGitHubProfileRepo,
				Login:  login,
				Branch: "main",
			},
		}, nil).
		Times(1)
	return m
}

func TestSyncFirstTime(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := publishedFetcher(t, ctl, "somebody", addressOne)

	result, err := wallet.Sync(context.Background(), m, records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	// first sync counts as a change
	assert.True(t, result.Changed, "first sync not marked changed")
	assert.Nil(t, result.Previous, "unexpected previous address")
	assert.NotNil(t, result.Current, "missing current address")
	assert.Equal(t, addressOne, result.Current.String(), "wrong current address")
	assert.Equal(t, "main", result.Source.Branch, "wrong source branch")

	// all three records must be present
	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.NotNil(t, userWallet, "missing wallet record")
	assert.Equal(t, addressOne, userWallet.Address.String(), "wrong stored address")
	assert.Equal(t, "somebody", userWallet.Login, "wrong login")
	assert.False(t, userWallet.SyncedAt.IsZero(), "missing sync time")

	history, err := wallet.History(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "history error")
	assert.Equal(t, 1, len(history), "wrong history length")
	assert.Equal(t, addressOne, history[0].Address.String(), "wrong history address")

	links, err := wallet.LoginsForWallet(mustAddress(t, addressOne))
	assert.NoError(t, err, "logins error")
	assert.Equal(t, 1, len(links), "wrong link count")
	assert.Equal(t, "somebody", links[0].Login, "wrong linked login")
}

func TestSyncUnchanged(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	result, err := wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")
	assert.True(t, result.Changed, "first sync not marked changed")

	firstStored, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")

	// second pass finds the same address
	result, err = wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	assert.False(t, result.Changed, "unchanged sync marked changed")
	assert.NotNil(t, result.Previous, "missing previous address")
	assert.Equal(t, addressOne, result.Previous.String(), "wrong previous address")
	assert.Equal(t, addressOne, result.Current.String(), "wrong current address")

	// nothing may have been written
	history, err := wallet.History(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "history error")
	assert.Equal(t, 1, len(history), "unchanged sync appended history")

	secondStored, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.True(t, firstStored.SyncedAt.Equal(secondStored.SyncedAt), "unchanged sync rewrote the record")
}

func TestSyncChanged(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	// the user moved to a new address
	result, err := wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressTwo), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	assert.True(t, result.Changed, "address change not detected")
	assert.Equal(t, addressOne, result.Previous.String(), "wrong previous address")
	assert.Equal(t, addressTwo, result.Current.String(), "wrong current address")

	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.Equal(t, addressTwo, userWallet.Address.String(), "wrong stored address")

	// both changes in chronological order
	history, err := wallet.History(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "history error")
	assert.Equal(t, 2, len(history), "wrong history length")
	assert.Equal(t, addressOne, history[0].Address.String(), "wrong order")
	assert.Equal(t, addressTwo, history[1].Address.String(), "wrong order")

	// the old link stays, the index is additive only
	links, err := wallet.LoginsForWallet(mustAddress(t, addressOne))
	assert.NoError(t, err, "logins error")
	assert.Equal(t, 1, len(links), "old link removed")

	links, err = wallet.LoginsForWallet(mustAddress(t, addressTwo))
	assert.NoError(t, err, "logins error")
	assert.Equal(t, 1, len(links), "missing new link")
}

func TestSyncNothingPublished(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().
		FetchWalletAddress(gomock.Any(), "somebody").
		Return(nil, nil).
		Times(1)

	result, err := wallet.Sync(context.Background(), m, records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	assert.False(t, result.Changed, "absent wallet marked changed")
	assert.Nil(t, result.Current, "unexpected current address")
	assert.Nil(t, result.Previous, "unexpected previous address")

	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.Nil(t, userWallet, "record stored without a wallet")
}

func TestSyncNothingPublishedKeepsPrevious(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	// the published file disappeared, the stored wallet must survive
	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().
		FetchWalletAddress(gomock.Any(), "somebody").
		Return(nil, nil).
		Times(1)

	result, err := wallet.Sync(context.Background(), m, records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")

	assert.False(t, result.Changed, "absent wallet marked changed")
	assert.Nil(t, result.Current, "unexpected current address")
	assert.Equal(t, addressOne, result.Previous.String(), "wrong previous address")

	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.NotNil(t, userWallet, "stored wallet lost")
	assert.Equal(t, addressOne, userWallet.Address.String(), "stored wallet changed")
}

func TestSyncFetchFailure(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().
		FetchWalletAddress(gomock.Any(), "somebody").
		Return(nil, fault.ProfileRepositoryNotAccessible).
		Times(1)

	_, err := wallet.Sync(context.Background(), m, records.PlatformGitHub, "somebody")
	assert.Equal(t, fault.ProfileRepositoryNotAccessible, err, "wrong error")

	// a failed fetch must leave no trace
	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.Nil(t, userWallet, "record stored after failed fetch")

	history, err := wallet.History(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "history error")
	assert.Equal(t, 0, len(history), "history written after failed fetch")
}

func TestSyncBlockedByOpenTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// an open transaction holds the single batch
	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "transaction error")

	_, err = wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.Equal(t, fault.TransactionAlreadyInProgress, err, "wrong error")

	// nothing of the blocked sync may be visible
	userWallet, err := wallet.Get(records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "get error")
	assert.Nil(t, userWallet, "record stored by blocked sync")

	trx.Abort()

	// and the sync goes through once the transaction is gone
	result, err := wallet.Sync(context.Background(), publishedFetcher(t, ctl, "somebody", addressOne), records.PlatformGitHub, "somebody")
	assert.NoError(t, err, "sync error")
	assert.True(t, result.Changed, "sync after abort not marked changed")
}

func TestSyncInvalidIdentity(t *testing.T) {
	setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// the fetcher must never be consulted
	m := mocks.NewMockFetcher(ctl)

	_, err := wallet.Sync(context.Background(), m, records.PlatformGitHub, "not a login")
	assert.Equal(t, fault.InvalidLogin, err, "wrong error")

	_, err = wallet.Sync(context.Background(), m, "", "somebody")
	assert.Equal(t, fault.InvalidPlatform, err, "wrong error")
}
