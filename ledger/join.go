// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/gate"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/storage"
)

// JoinPool - append a project's share entry to a pool
//
// checks in order: both records exist, the pool window is open at
// the trusted time, the authority passes the access policy, the
// project is not yet a member and the pool has a free entry
//
// when no authority is given the payer is the claimed authority
func (e *Engine) JoinPool(j *instruction.JoinPool) (*Joined, error) {
	if nil == j {
		return nil, fault.ErrMissingParameters
	}
	err := j.Verify(e.testnet)
	if nil != err {
		e.log.Warnf("join: project: %d  pool: %d  rejected: %s", j.ProjectId, j.PoolId, err)
		return nil, err
	}

	projectKey, err := address.ForProject(j.ProjectId)
	if nil != err {
		return nil, err
	}
	poolAddress, err := address.ForPool(j.PoolId)
	if nil != err {
		return nil, err
	}

	authority := j.Authority
	if nil == authority {
		authority = j.Payer
	}

	// only the pool is modified
	unlock := e.locks.lock(poolAddress)
	defer unlock()

	trx, err := storage.NewTransaction()
	if nil != err {
		e.log.Errorf("join: storage error: %s", err)
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	_, err = e.readProject(trx.Get(storage.Pool.Projects, projectKey[:]))
	if nil != err {
		e.log.Warnf("join: project: %s  error: %s", projectKey, err)
		return nil, err
	}

	pool, err := e.readPool(trx.Get(storage.Pool.Pools, poolAddress[:]))
	if nil != err {
		e.log.Warnf("join: pool: %s  error: %s", poolAddress, err)
		return nil, err
	}

	now := unixSeconds(e.clock.Now())

	err = gate.Window(pool, now)
	if nil != err {
		e.log.Warnf("join: pool: %s  now: %d  window: %d..%d  error: %s", poolAddress, now, pool.Start, pool.End, err)
		return nil, err
	}

	err = gate.Access(pool, authority)
	if nil != err {
		e.log.Warnf("join: pool: %s  authority: %s  error: %s", poolAddress, authority, err)
		return nil, err
	}

	share := record.ProjectShare{
		ProjectKey: projectKey,
		Share: record.ShareMetadata{
			Joined: now,
		},
	}

	// checks membership before capacity
	err = pool.ProjectShares.Append(share)
	if nil != err {
		e.log.Warnf("join: pool: %s  project: %s  error: %s", poolAddress, projectKey, err)
		return nil, err
	}

	packed, err := pool.Pack()
	if nil != err {
		e.log.Errorf("join: pool: %s  pack error: %s", poolAddress, err)
		return nil, err
	}

	trx.Put(storage.Pool.Pools, poolAddress[:], packed)
	err = trx.Commit()
	if nil != err {
		e.log.Errorf("join: pool: %s  commit error: %s", poolAddress, err)
		return nil, err
	}
	committed = true

	index := pool.ProjectShares.Len() - 1
	e.log.Infof("joined: pool: %s  project: %s  index: %d", poolAddress, projectKey, index)

	return &Joined{
		Pool:       poolAddress,
		ProjectKey: projectKey,
		Index:      index,
		Share:      share.Share,
	}, nil
}
