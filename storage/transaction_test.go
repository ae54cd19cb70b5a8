// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/stockpiled/storage/mocks"
)

var testPool = &PoolHandle{
	name:   "Test",
	prefix: 'T',
	limit:  []byte{'U'},
}

func setupTestTransaction(t *testing.T) (*transaction, *mocks.MockDataAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockDataAccess(ctl)
	return newTransaction(mock), mock, ctl
}

func TestTransactionReadsDatabase(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Has([]byte("Tkey")).Return(true, nil).Times(1)
	mock.EXPECT().Get([]byte("Tkey")).Return([]byte("value"), nil).Times(1)
	mock.EXPECT().Get([]byte("Tnone")).Return(nil, leveldb.ErrNotFound).Times(1)

	assert.True(t, trx.Has(testPool, []byte("key")), "has")
	assert.Equal(t, []byte("value"), trx.Get(testPool, []byte("key")), "get")
	assert.Nil(t, trx.Get(testPool, []byte("none")), "missing")
}

func TestTransactionStagedReads(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	// staged keys never reach the database
	mock.EXPECT().Has(gomock.Any()).Times(0)
	mock.EXPECT().Get(gomock.Any()).Times(0)

	trx.Put(testPool, []byte("key"), []byte("staged"))
	assert.True(t, trx.Has(testPool, []byte("key")), "has")
	assert.Equal(t, []byte("staged"), trx.Get(testPool, []byte("key")), "get")
}

func TestTransactionCommitWritesOnce(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Write(gomock.Any()).DoAndReturn(func(batch *leveldb.Batch) error {
		assert.Equal(t, 2, batch.Len(), "batch length")
		return nil
	}).Times(1)

	trx.Put(testPool, []byte("one"), []byte("1"))
	trx.Put(testPool, []byte("two"), []byte("2"))
	assert.Nil(t, trx.Commit(), "commit")
}

func TestTransactionEmptyCommit(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Write(gomock.Any()).Times(0)
	assert.Nil(t, trx.Commit(), "empty commit")
}

func TestTransactionCommitError(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	failed := errors.New("disk full")
	mock.EXPECT().Write(gomock.Any()).Return(failed).Times(1)

	trx.Put(testPool, []byte("one"), []byte("1"))
	assert.Equal(t, failed, trx.Commit(), "commit error")
}
