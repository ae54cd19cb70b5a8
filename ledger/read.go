// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/storage"
)

// Project - read a committed project
func (e *Engine) Project(a address.Address) (*record.Project, error) {
	return e.readProject(storage.Pool.Projects.Get(a[:]))
}

// Pool - read a committed pool
func (e *Engine) Pool(a address.Address) (*record.Pool, error) {
	return e.readPool(storage.Pool.Pools.Get(a[:]))
}

// Source - read a committed source
func (e *Engine) Source(a address.Address) (*record.Source, error) {
	packed := storage.Pool.Sources.Get(a[:])
	if nil == packed {
		return nil, fault.ErrSourceNotFound
	}
	source, ok := e.unpack(packed).(*record.Source)
	if !ok {
		logger.Panicf("ledger: source: %s  holds another record type", a)
	}
	return source, nil
}

func (e *Engine) readProject(packed []byte) (*record.Project, error) {
	if nil == packed {
		return nil, fault.ErrProjectNotFound
	}
	project, ok := e.unpack(packed).(*record.Project)
	if !ok {
		logger.Panic("ledger: projects table holds another record type")
	}
	return project, nil
}

func (e *Engine) readPool(packed []byte) (*record.Pool, error) {
	if nil == packed {
		return nil, fault.ErrPoolNotFound
	}
	pool, ok := e.unpack(packed).(*record.Pool)
	if !ok {
		logger.Panic("ledger: pools table holds another record type")
	}
	return pool, nil
}

// stored records were validated when written so a failure here is
// corruption
func (e *Engine) unpack(packed []byte) record.Record {
	r, err := record.Packed(packed).Unpack(e.testnet)
	logger.PanicIfError("ledger: unpack", err)
	return r
}
