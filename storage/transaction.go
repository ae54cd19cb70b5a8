// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/stockpiled/fault"
)

// Transaction - a set of writes applied all together or not at all
//
// reads see the transaction's own uncommitted writes
type Transaction interface {
	Has(*PoolHandle, []byte) bool
	Get(*PoolHandle, []byte) []byte
	Put(*PoolHandle, []byte, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	dataAccess DataAccess
	batch      *leveldb.Batch
	cache      Cache
	finished   bool
}

// NewTransaction - start a transaction on the open database
func NewTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.dataAccess {
		return nil, fault.ErrNotInitialised
	}
	if poolData.readOnly {
		return nil, fault.ErrReadOnly
	}
	return newTransaction(poolData.dataAccess), nil
}

func newTransaction(dataAccess DataAccess) *transaction {
	return &transaction{
		dataAccess: dataAccess,
		batch:      new(leveldb.Batch),
		cache:      newCache(),
	}
}

// Has - check for a key in staged writes then the database
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	defer t.Unlock()

	prefixedKey := p.prefixKey(key)
	if _, found := t.cache.Get(string(prefixedKey)); found {
		return true
	}

	poolData.RLock()
	defer poolData.RUnlock()
	value, err := t.dataAccess.Has(prefixedKey)
	logger.PanicIfError("transaction.Has", err)
	return value
}

// Get - read a key from staged writes then the database
//
// returns nil if the key is not present
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()

	prefixedKey := p.prefixKey(key)
	if value, found := t.cache.Get(string(prefixedKey)); found {
		return value
	}

	poolData.RLock()
	defer poolData.RUnlock()
	value, err := t.dataAccess.Get(prefixedKey)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// Put - stage a write
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		logger.Panicf("transaction.Put: %s: after commit or abort", p.name)
	}

	prefixedKey := p.prefixKey(key)
	staged := make([]byte, len(value))
	copy(staged, value)

	t.batch.Put(prefixedKey, staged)
	t.cache.Set(string(prefixedKey), staged)
}

// Commit - write all staged data in a single batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.ErrTransactionFinished
	}
	t.finished = true
	defer t.cache.Clear()

	if 0 == t.batch.Len() {
		return nil
	}

	poolData.RLock()
	defer poolData.RUnlock()
	return t.dataAccess.Write(t.batch)
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.batch.Reset()
	t.cache.Clear()
}
