// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++         = concatenation of byte data
//  3. timestamp  = unix nanoseconds as big endian uint64 (8 bytes)
//  4. number     = pull request number as big endian uint64 (8 bytes)
//  5. repo       = "owner/name" utf-8 (validation forbids ':' inside)
//  6. login      = platform account name (validation forbids ':' inside)
//  7. address    = Base58 P2PK wallet address (alphabet excludes ':')
//  8. *values*   = JSON encoded record structures
//
// Repositories:
//
//	R ++ repo                              - tracked repository state
//	                                         data: JSON Repository
//	P ++ repo ++ ':' ++ number             - merged pull request
//	                                         data: JSON MergedPullRequest
//	B ++ repo ++ ':' ++ timestamp          - base branch change history
//	                                         data: JSON BaseBranchChange
//
// Wallets:
//
//	W ++ platform ++ ':' ++ login                       - current wallet
//	                                                      data: JSON UserWallet
//	H ++ platform ++ ':' ++ login ++ ':' ++ timestamp   - change history
//	                                                      data: JSON WalletHistoryEntry
//	X ++ address ++ ':' ++ platform ++ ':' ++ login     - reverse index
//	                                                      data: JSON WalletLoginLink
//
// Projects:
//
//	J ++ project id                        - project
//	                                         data: JSON Project
//	O ++ project id ++ ':' ++ username     - project owner
//	                                         data: JSON ProjectOwner
//
// Testing:
//
//	Z ++ key                               - testing data
package storage
