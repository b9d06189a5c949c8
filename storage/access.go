// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched writes over a leveldb handle
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Get([]byte) ([]byte, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Close() error
}

type dataAccess struct {
	db          *leveldb.DB
	transaction *leveldb.Batch
}

func newDataAccess(db *leveldb.DB) DataAccess {
	return &dataAccess{
		db:          db,
		transaction: new(leveldb.Batch),
	}
}

func (d *dataAccess) Begin() {
	d.transaction.Reset()
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.transaction.Put(key, value)
}

func (d *dataAccess) Delete(key []byte) {
	d.transaction.Delete(key)
}

// Write - commit the batch, the batch is reset either way
func (d *dataAccess) Write() error {
	err := d.db.Write(d.transaction, nil)
	d.Begin()
	return err
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *dataAccess) Close() error {
	return d.db.Close()
}
