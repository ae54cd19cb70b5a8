// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derive the storage address of a record from its
// kind and natural key
//
// An address is both the storage key and the proof of existence: a
// record exists if and only if its address is occupied.
//
//	address = SHA3-256(domain ++ [ len(seed) ++ seed ]...)
//
// len(seed) is a single byte, numeric seeds are 8 byte little endian.
package address

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
)

// Length - number of bytes in an address
const Length = 32

// limits on derivation input
const (
	MaximumSeedLength = 32
	MaximumSeeds      = 16
)

// seed prefixes distinguishing the record kinds
const (
	ProjectSeed = "fundraiser"
	PoolSeed    = "pool"
	SourceSeed  = "source"
)

// separates record addresses from any other SHA3 use
var domain = []byte("stockpile-record-address")

// Address - the storage location of a single record
type Address [Length]byte

// Derive - compute an address from an ordered list of seeds
//
// fails rather than truncate any seed
func Derive(seeds ...[]byte) (Address, error) {
	if len(seeds) > MaximumSeeds {
		return Address{}, fault.ErrTooManySeeds
	}

	h := sha3.New256()
	h.Write(domain)
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return Address{}, fault.ErrSeedTooLong
		}
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}

	var a Address
	copy(a[:], h.Sum(nil))
	return a, nil
}

// ForProject - address of the project with this id
func ForProject(projectId uint64) (Address, error) {
	return Derive([]byte(ProjectSeed), le64(projectId))
}

// ForPool - address of the pool with this id
func ForPool(poolId uint64) (Address, error) {
	return Derive([]byte(PoolSeed), le64(poolId))
}

// ForSource - address of a source
//
// the payer is part of the key, so identical contributions from
// different payers do not collide
func ForSource(name string, poolId uint64, amount uint64, payer *account.Account) (Address, error) {
	if nil == payer {
		return Address{}, fault.ErrMissingPayer
	}
	return Derive(
		[]byte(SourceSeed),
		[]byte(name),
		le64(poolId),
		le64(amount),
		payer.PublicKey,
	)
}

// fixed width integer encoding for seeds
func le64(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// FromBytes - validate and convert a byte slice
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.ErrCannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return FromBytes(buffer)
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - base58 for the fmt package (%s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - hex for the fmt package (%#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert to base58 JSON text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 JSON text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
