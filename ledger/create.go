// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/storage"
)

// CreateProject - store a new project
func (e *Engine) CreateProject(c *instruction.CreateProject) (*Created, error) {
	if nil == c {
		return nil, fault.ErrMissingParameters
	}
	err := c.Verify(e.testnet)
	if nil != err {
		e.log.Warnf("create project: %d  rejected: %s", c.ProjectId, err)
		return nil, err
	}
	return e.create("project", storage.Pool.Projects, c.Record())
}

// CreatePool - store a new pool with no project shares
func (e *Engine) CreatePool(c *instruction.CreatePool) (*Created, error) {
	if nil == c {
		return nil, fault.ErrMissingParameters
	}
	err := c.Verify(e.testnet)
	if nil != err {
		e.log.Warnf("create pool: %d  rejected: %s", c.PoolId, err)
		return nil, err
	}
	return e.create("pool", storage.Pool.Pools, c.Record())
}

// CreateSource - store a new source
//
// the pool it names is not required to exist
func (e *Engine) CreateSource(c *instruction.CreateSource) (*Created, error) {
	if nil == c {
		return nil, fault.ErrMissingParameters
	}
	err := c.Verify(e.testnet)
	if nil != err {
		e.log.Warnf("create source: %q  rejected: %s", c.Name, err)
		return nil, err
	}
	return e.create("source", storage.Pool.Sources, c.Record())
}

// addressable - a record that knows its own storage address
type addressable interface {
	record.Record
	Address() (address.Address, error)
}

// the creation steps shared by all record kinds
//
// first writer wins: a record is never overwritten
func (e *Engine) create(kind string, pool *storage.PoolHandle, r addressable) (*Created, error) {
	a, err := r.Address()
	if nil != err {
		e.log.Warnf("create %s: address error: %s", kind, err)
		return nil, err
	}
	e.log.Debugf("create %s: address: %s", kind, a)

	unlock := e.locks.lock(a)
	defer unlock()

	trx, err := storage.NewTransaction()
	if nil != err {
		e.log.Errorf("create %s: storage error: %s", kind, err)
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	if trx.Has(pool, a[:]) {
		e.log.Warnf("create %s: %s  already exists", kind, a)
		return nil, fault.ErrRecordAlreadyExists
	}

	err = r.Validate()
	if nil != err {
		e.log.Warnf("create %s: %s  invalid: %s", kind, a, err)
		return nil, err
	}

	packed, err := r.Pack()
	if nil != err {
		e.log.Warnf("create %s: %s  pack error: %s", kind, a, err)
		return nil, err
	}

	trx.Put(pool, a[:], packed)
	err = trx.Commit()
	if nil != err {
		e.log.Errorf("create %s: %s  commit error: %s", kind, a, err)
		return nil, err
	}
	committed = true

	e.log.Infof("created %s: %s", kind, a)

	return &Created{
		Address: a,
		Space:   len(packed),
	}, nil
}
