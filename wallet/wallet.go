// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GitCircles/GitCircles-Github/fault"
	"github.com/GitCircles/GitCircles-Github/p2pk"
	"github.com/GitCircles/GitCircles-Github/records"
	"github.com/GitCircles/GitCircles-Github/storage"
)

// checkIdentity - reject identities that would break the key layout
func checkIdentity(platform string, login string) error {
	if "" == platform || strings.ContainsRune(platform, ':') {
		return fault.InvalidPlatform
	}
	if !records.ValidLogin(login) {
		return fault.InvalidLogin
	}
	return nil
}

// walletKey - key for the current wallet of one login
//
// layout: platform ':' login
func walletKey(platform string, login string) []byte {
	return []byte(platform + ":" + login)
}

// historyKey - key for one history entry
//
// layout: platform ':' login ':' eight byte big endian nanosecond
// timestamp, so repeated changes inside one second stay distinct
func historyKey(platform string, login string, unixNano int64) []byte {
	key := []byte(platform + ":" + login + ":")
	numberBuffer := make([]byte, 8)
	binary.BigEndian.PutUint64(numberBuffer, uint64(unixNano))
	return append(key, numberBuffer...)
}

// linkKey - key for one reverse index link
//
// layout: address ':' platform ':' login
func linkKey(address p2pk.Address, platform string, login string) []byte {
	return []byte(address.String() + ":" + platform + ":" + login)
}

// Get - fetch the current wallet of one login
//
// returns nil if the login never published a wallet
func Get(platform string, login string) (*records.UserWallet, error) {
	err := checkIdentity(platform, login)
	if nil != err {
		return nil, err
	}

	key := walletKey(platform, login)

	data, err := storage.Pool.UserWallets.Get(key)
	if nil != err {
		return nil, fmt.Errorf("wallet: %q: %s", key, err)
	}
	if nil == data {
		return nil, nil
	}

	userWallet := &records.UserWallet{}
	err = json.Unmarshal(data, userWallet)
	if nil != err {
		return nil, fault.RecordError(fmt.Sprintf("corrupted wallet record: %q: %s", key, err))
	}

	return userWallet, nil
}

// History - fetch all recorded wallet changes of one login
//
// records come back in chronological order
func History(platform string, login string) ([]records.WalletHistoryEntry, error) {
	err := checkIdentity(platform, login)
	if nil != err {
		return nil, err
	}

	history := []records.WalletHistoryEntry{}

	cursor := storage.Pool.UserWalletHistory.NewPrefixCursor([]byte(platform + ":" + login + ":"))
	err = cursor.Map(func(key []byte, value []byte) error {
		entry := records.WalletHistoryEntry{}
		err := json.Unmarshal(value, &entry)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted wallet history record: %q: %s", key, err))
		}
		history = append(history, entry)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return history, nil
}

// LoginsForWallet - fetch every login that ever claimed an address
//
// the reverse index is additive only, so logins that since moved to
// another address still show up here
func LoginsForWallet(address p2pk.Address) ([]records.WalletLoginLink, error) {
	links := []records.WalletLoginLink{}

	cursor := storage.Pool.WalletIndex.NewPrefixCursor([]byte(address.String() + ":"))
	err := cursor.Map(func(key []byte, value []byte) error {
		link := records.WalletLoginLink{}
		err := json.Unmarshal(value, &link)
		if nil != err {
			return fault.RecordError(fmt.Sprintf("corrupted wallet link record: %q: %s", key, err))
		}
		links = append(links, link)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return links, nil
}
