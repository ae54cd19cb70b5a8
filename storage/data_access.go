// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

//go:generate mockgen -source=data_access.go -destination=mocks/data_access.go -package=mocks

// DataAccess - the database operations used by pools and transactions
type DataAccess interface {
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Write(*leveldb.Batch) error
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccess struct {
	db *leveldb.DB
}

// committed batches are synced so an acknowledged operation survives
// a crash
var writeOptions = &ldb_opt.WriteOptions{
	Sync: true,
}

func newDataAccess(db *leveldb.DB) DataAccess {
	return &dataAccess{
		db: db,
	}
}

func (d *dataAccess) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *dataAccess) Write(batch *leveldb.Batch) error {
	return d.db.Write(batch, writeOptions)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
