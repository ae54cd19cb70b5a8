// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - apply signed instructions to the record store
//
// Every operation runs under the lock of the record it modifies and
// inside a single storage transaction: either all of its writes are
// committed or none are.
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/storage"
)

//go:generate mockgen -source=ledger.go -destination=../rpc/mocks/ledger.go -package=mocks

// Ledger - operations offered to the RPC layer
type Ledger interface {
	CreateProject(*instruction.CreateProject) (*Created, error)
	CreatePool(*instruction.CreatePool) (*Created, error)
	CreateSource(*instruction.CreateSource) (*Created, error)
	JoinPool(*instruction.JoinPool) (*Joined, error)
	Project(address.Address) (*record.Project, error)
	Pool(address.Address) (*record.Pool, error)
	Source(address.Address) (*record.Source, error)
	Counts() Counts
	IsTesting() bool
}

// Created - result of a successful creation
type Created struct {
	Address address.Address `json:"address"`
	Space   int             `json:"space"` // bytes of storage funded by the payer
}

// Joined - result of a successful join
type Joined struct {
	Pool       address.Address      `json:"pool"`
	ProjectKey address.Address      `json:"projectKey"`
	Index      int                  `json:"index"` // position in the pool's project shares
	Share      record.ShareMetadata `json:"share"`
}

// Counts - number of stored records of each kind
type Counts struct {
	Projects int `json:"projects"`
	Pools    int `json:"pools"`
	Sources  int `json:"sources"`
}

// Engine - the ledger over the open storage pools
type Engine struct {
	log     *logger.L
	testnet bool
	clock   Clock
	locks   *lockTable
}

// New - create a ledger engine
//
// storage must already be initialised
func New(testnet bool, clock Clock) *Engine {
	if nil == clock {
		clock = SystemClock{}
	}
	return &Engine{
		log:     logger.New("ledger"),
		testnet: testnet,
		clock:   clock,
		locks:   newLockTable(),
	}
}

// IsTesting - true if only test network accounts are accepted
func (e *Engine) IsTesting() bool {
	return e.testnet
}

// Counts - number of stored records of each kind
func (e *Engine) Counts() Counts {
	return Counts{
		Projects: storage.Pool.Projects.Count(),
		Pools:    storage.Pool.Pools.Count(),
		Sources:  storage.Pool.Sources.Count(),
	}
}
