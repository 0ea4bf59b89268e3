// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// Transaction - an atomic multi-pool write session
//
// writes are queued into one batch and the batch either commits
// completely or aborts completely, partial application is impossible;
// queued writes stay visible to reads through the cache until Abort
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	access *dbAccess
}

func newTransaction(access *dbAccess) Transaction {
	return &transactionData{
		access: access,
	}
}

// Begin - start the transaction, error if one is already in progress
func (t *transactionData) Begin() error {
	return t.access.begin()
}

// Put - queue a prefixed key/value write
func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.put(handle.prefixKey(key), value)
}

// Delete - queue a prefixed key delete
func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.remove(handle.prefixKey(key))
}

// Get - read through the cache so queued writes are visible
func (t *transactionData) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	value, err := t.access.get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	return value, nil
}

// Commit - write the whole batch out atomically
func (t *transactionData) Commit() error {
	return t.access.commit()
}

// Abort - throw away every queued write
func (t *transactionData) Abort() {
	t.access.abort()
}

// InUse - transaction in progress
func (t *transactionData) InUse() bool {
	return t.access.isInUse()
}
