// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// combined access to the database, the pending transaction batch and
// the read-through cache that keeps pending writes visible
type dbAccess struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newAccess(db *leveldb.DB, cache Cache) *dbAccess {
	return &dbAccess{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *dbAccess) begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInProgress
	}

	d.inUse = true
	return nil
}

// queue a put into the current batch
func (d *dbAccess) put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// queue a delete into the current batch
func (d *dbAccess) remove(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// atomically write out the whole batch
func (d *dbAccess) commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, syncWrite)
	if nil != err {
		return err
	}
	d.batch.Reset()
	d.inUse = false
	return nil
}

func (d *dbAccess) abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// immediate durable single key write
func (d *dbAccess) putNow(key []byte, value []byte) error {
	err := d.db.Put(key, value, syncWrite)
	if nil != err {
		return err
	}
	d.cache.Set(dbPut, string(key), value)
	return nil
}

// immediate durable single key delete
func (d *dbAccess) removeNow(key []byte) error {
	err := d.db.Delete(key, syncWrite)
	if nil != err {
		return err
	}
	d.cache.Set(dbDelete, string(key), []byte{})
	return nil
}

func (d *dbAccess) get(key []byte) ([]byte, error) {
	if d.cache.Deleted(string(key)) {
		return nil, leveldb.ErrNotFound
	}
	if value, found := d.cache.Get(string(key)); found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *dbAccess) has(key []byte) (bool, error) {
	if d.cache.Deleted(string(key)) {
		return false, nil
	}
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

func (d *dbAccess) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *dbAccess) isInUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
