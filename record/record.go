// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted layout and validation rules of the
// Project, Pool and Source records
package record

import (
	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
)

// TagType - type code for records
type TagType uint8

// enumerate the possible record types
// this is the first byte of "Packed"
const (
	// null marks an unused storage cell - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	ProjectTag = TagType(iota) // fundraiser with a goal
	PoolTag    = TagType(iota) // time-windowed funding round
	SourceTag  = TagType(iota) // external contribution

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Validate() error
	Pack() (Packed, error)
}

// limits on record fields
const (
	MinNameLength        = 1
	MaxNameLength        = 50
	MaxSourceNameLength  = address.MaximumSeedLength
	MaxAdmins            = 5
	MaximumProjectShares = 16
)

// Project - a fundraiser, write-once
type Project struct {
	ProjectId   uint64           `json:"projectId,string"` // caller chosen key
	Name        string           `json:"name"`             // utf-8
	Admins      AdminSet         `json:"admins"`           // base58 list
	Beneficiary *account.Account `json:"beneficiary"`      // base58: receives funds on success
	Goal        uint64           `json:"goal,string"`      // target amount
}

// Pool - a funding round aggregating projects
//
// only ProjectShares changes after creation
type Pool struct {
	PoolId        uint64   `json:"poolId,string"` // caller chosen key
	Name          string   `json:"name"`          // utf-8
	Start         uint64   `json:"start"`         // unix seconds, joins allowed from here
	End           uint64   `json:"end"`           // unix seconds, joins rejected from here
	Admins        AdminSet `json:"admins"`        // base58 list
	Access        Access   `json:"access"`        // open or manual
	ProjectShares Shares   `json:"projectShares"` // in join order
}

// Source - a recorded external contribution, write-once
type Source struct {
	Name   string           `json:"name"`          // utf-8
	PoolId uint64           `json:"poolId,string"` // need not refer to an existing pool
	Amount uint64           `json:"amount,string"` // smallest currency unit
	Payer  *account.Account `json:"payer"`         // base58: part of the key
}

// Address - storage address of a project
func (project *Project) Address() (address.Address, error) {
	return address.ForProject(project.ProjectId)
}

// Address - storage address of a pool
func (pool *Pool) Address() (address.Address, error) {
	return address.ForPool(pool.PoolId)
}

// Address - storage address of a source
func (source *Source) Address() (address.Address, error) {
	return address.ForSource(source.Name, source.PoolId, source.Amount, source.Payer)
}
