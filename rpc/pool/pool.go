// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pool - RPC service for pools and joins
package pool

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/rpc/ratelimit"
)

const (
	rateLimitPool = 200
	rateBurstPool = 100
)

// Pool - type for RPC calls
type Pool struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the pool service
func New(log *logger.L, l ledger.Ledger) *Pool {
	return &Pool{
		Log:     log,
		Limiter: ratelimit.New(rateLimitPool, rateBurstPool),
		Ledger:  l,
	}
}

// ---

// CreateReply - result of creating a pool
type CreateReply struct {
	Address address.Address `json:"address"`
	Space   int             `json:"space"`
}

// Create - store a new signed pool
func (pool *Pool) Create(arguments *instruction.CreatePool, reply *CreateReply) error {

	if err := ratelimit.Limit(pool.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	pool.Log.Infof("Pool.Create: id: %d  name: %q  access: %s", arguments.PoolId, arguments.Name, arguments.Access)

	created, err := pool.Ledger.CreatePool(arguments)
	if nil != err {
		return err
	}

	reply.Address = created.Address
	reply.Space = created.Space
	return nil
}

// ---

// JoinReply - the share entry appended to the pool
type JoinReply struct {
	Pool       address.Address      `json:"pool"`
	ProjectKey address.Address      `json:"projectKey"`
	Index      int                  `json:"index"`
	Share      record.ShareMetadata `json:"share"`
}

// Join - add a project to a pool
func (pool *Pool) Join(arguments *instruction.JoinPool, reply *JoinReply) error {

	if err := ratelimit.Limit(pool.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	pool.Log.Infof("Pool.Join: project: %d  pool: %d", arguments.ProjectId, arguments.PoolId)

	joined, err := pool.Ledger.JoinPool(arguments)
	if nil != err {
		return err
	}

	reply.Pool = joined.Pool
	reply.ProjectKey = joined.ProjectKey
	reply.Index = joined.Index
	reply.Share = joined.Share
	return nil
}

// ---

// GetArguments - select a pool by address or by id
type GetArguments struct {
	PoolId  uint64           `json:"poolId,string"`
	Address *address.Address `json:"address,omitempty"`
}

// GetReply - a stored pool
type GetReply struct {
	Address address.Address `json:"address"`
	Pool    *record.Pool    `json:"pool"`
}

// Get - read a pool including its project shares
func (pool *Pool) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(pool.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a := arguments.Address
	if nil == a {
		derived, err := address.ForPool(arguments.PoolId)
		if nil != err {
			return err
		}
		a = &derived
	}

	p, err := pool.Ledger.Pool(*a)
	if nil != err {
		return err
	}

	reply.Address = *a
	reply.Pool = p
	return nil
}
