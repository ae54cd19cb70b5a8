// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - RPC service for source records
package source

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/rpc/ratelimit"
)

const (
	rateLimitSource = 200
	rateBurstSource = 100
)

// Source - type for RPC calls
type Source struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the source service
func New(log *logger.L, l ledger.Ledger) *Source {
	return &Source{
		Log:     log,
		Limiter: ratelimit.New(rateLimitSource, rateBurstSource),
		Ledger:  l,
	}
}

// ---

// CreateReply - result of creating a source
type CreateReply struct {
	Address address.Address `json:"address"`
	Space   int             `json:"space"`
}

// Create - store a new signed source
func (source *Source) Create(arguments *instruction.CreateSource, reply *CreateReply) error {

	if err := ratelimit.Limit(source.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	source.Log.Infof("Source.Create: name: %q  pool: %d  amount: %d", arguments.Name, arguments.PoolId, arguments.Amount)

	created, err := source.Ledger.CreateSource(arguments)
	if nil != err {
		return err
	}

	reply.Address = created.Address
	reply.Space = created.Space
	return nil
}

// ---

// GetArguments - select a source by address or by its full key
type GetArguments struct {
	Address *address.Address `json:"address,omitempty"`
	Name    string           `json:"name"`
	PoolId  uint64           `json:"poolId,string"`
	Amount  uint64           `json:"amount,string"`
	Payer   *account.Account `json:"payer"`
}

// GetReply - a stored source
type GetReply struct {
	Address address.Address `json:"address"`
	Source  *record.Source  `json:"source"`
}

// Get - read a source
func (source *Source) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(source.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a := arguments.Address
	if nil == a {
		derived, err := address.ForSource(arguments.Name, arguments.PoolId, arguments.Amount, arguments.Payer)
		if nil != err {
			return err
		}
		a = &derived
	}

	s, err := source.Ledger.Source(*a)
	if nil != err {
		return err
	}

	reply.Address = *a
	reply.Source = s
	return nil
}
