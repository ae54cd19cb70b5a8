// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
)

// Type - the tag of a packed record
func (record Packed) Type() TagType {
	if 0 == len(record) || record[0] >= byte(InvalidTag) {
		return InvalidTag
	}
	return TagType(record[0])
}

// Unpack - turn a stored byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *record.Pool:
func (record Packed) Unpack(testnet bool) (r Record, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			e = fault.ErrNotRecordPack
		}
	}()

	tag := record.Type()
	if len(record) != tag.Space() {
		return nil, fault.ErrNotRecordPack
	}

	n := 1
	var err error

	switch tag {

	case ProjectTag:
		project := &Project{}
		project.ProjectId, n = readUint64(record, n)
		project.Name, n = readString(record, n)
		project.Admins, n, err = readAdmins(record, n, testnet)
		if nil != err {
			return nil, err
		}
		project.Beneficiary, n, err = readAccount(record, n, testnet)
		if nil != err {
			return nil, err
		}
		project.Goal, _ = readUint64(record, n)

		r = project

	case PoolTag:
		pool := &Pool{}
		pool.PoolId, n = readUint64(record, n)
		pool.Name, n = readString(record, n)
		pool.Start, n = readUint64(record, n)
		pool.End, n = readUint64(record, n)
		pool.Admins, n, err = readAdmins(record, n, testnet)
		if nil != err {
			return nil, err
		}
		pool.Access = Access(record[n])
		n += 1

		count := int(record[n])
		n += 1
		if count > MaximumProjectShares {
			return nil, fault.ErrNotRecordPack
		}
		for i := 0; i < count; i += 1 {
			share := ProjectShare{}
			copy(share.ProjectKey[:], record[n:n+len(share.ProjectKey)])
			n += len(share.ProjectKey)
			share.Share.Joined, n = readUint64(record, n)
			share.Share.Contributed, n = readUint64(record, n)
			share.Share.Votes, n = readUint64(record, n)
			if nil != pool.ProjectShares.Append(share) {
				return nil, fault.ErrNotRecordPack
			}
		}

		r = pool

	case SourceTag:
		source := &Source{}
		source.Name, n = readString(record, n)
		source.PoolId, n = readUint64(record, n)
		source.Amount, n = readUint64(record, n)
		source.Payer, _, err = readAccount(record, n, testnet)
		if nil != err {
			return nil, err
		}

		r = source

	default:
		return nil, fault.ErrNotRecordPack
	}

	// a stored record always satisfies its invariants
	err = r.Validate()
	if nil != err {
		return nil, fault.ErrNotRecordPack
	}
	return r, nil
}

func readUint64(record Packed, n int) (uint64, int) {
	return binary.LittleEndian.Uint64(record[n : n+uint64Space]), n + uint64Space
}

func readString(record Packed, n int) (string, int) {
	length := int(record[n])
	n += 1
	return string(record[n : n+length]), n + length
}

func readAccount(record Packed, n int, testnet bool) (*account.Account, int, error) {
	length := int(record[n])
	n += 1
	a, err := account.AccountFromBytes(record[n : n+length])
	if nil != err {
		return nil, 0, err
	}
	if a.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	return a, n + length, nil
}

func readAdmins(record Packed, n int, testnet bool) (AdminSet, int, error) {
	count := int(record[n])
	n += 1
	if count > MaxAdmins {
		return nil, 0, fault.ErrNotRecordPack
	}
	admins := make(AdminSet, count)
	for i := range admins {
		a, next, err := readAccount(record, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		admins[i] = a
		n = next
	}
	return admins, n, nil
}
