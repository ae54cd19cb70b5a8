// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
)

// byte sizes of the fixed layouts
const (
	uint64Space  = 8
	accountSpace = 1 + account.BytesLength
	nameSpace    = 1 + MaxNameLength
	adminsSpace  = 1 + MaxAdmins*accountSpace
	shareSpace   = address.Length + 3*uint64Space
	sharesSpace  = 1 + MaximumProjectShares*shareSpace

	// ProjectSpace - tag, id, name, admins, beneficiary, goal
	ProjectSpace = 1 + uint64Space + nameSpace + adminsSpace + accountSpace + uint64Space

	// PoolSpace - tag, id, name, start, end, admins, access, shares
	PoolSpace = 1 + uint64Space + nameSpace + 2*uint64Space + adminsSpace + 1 + sharesSpace

	// SourceSpace - tag, name, pool id, amount, payer
	SourceSpace = 1 + 1 + MaxSourceNameLength + 2*uint64Space + accountSpace
)

// Space - storage bytes allocated for a record of this type
func (tag TagType) Space() int {
	switch tag {
	case ProjectTag:
		return ProjectSpace
	case PoolTag:
		return PoolSpace
	case SourceTag:
		return SourceSpace
	default:
		return 0
	}
}

// Pack - fixed size layout of a project
//
// Pack tag byte followed by fields in order as struct above, padded
// with zeros to ProjectSpace
func (project *Project) Pack() (Packed, error) {
	err := project.Validate()
	if nil != err {
		return nil, err
	}

	buffer := Packed{byte(ProjectTag)}
	buffer = appendUint64(buffer, project.ProjectId)
	buffer = appendString(buffer, project.Name)
	buffer = appendAdmins(buffer, project.Admins)
	buffer = appendAccount(buffer, project.Beneficiary)
	buffer = appendUint64(buffer, project.Goal)

	return pad(buffer, ProjectSpace)
}

// Pack - fixed size layout of a pool
//
// the share list always occupies its full capacity so a join
// rewrites the record in place at the same size
func (pool *Pool) Pack() (Packed, error) {
	err := pool.Validate()
	if nil != err {
		return nil, err
	}

	buffer := Packed{byte(PoolTag)}
	buffer = appendUint64(buffer, pool.PoolId)
	buffer = appendString(buffer, pool.Name)
	buffer = appendUint64(buffer, pool.Start)
	buffer = appendUint64(buffer, pool.End)
	buffer = appendAdmins(buffer, pool.Admins)
	buffer = append(buffer, byte(pool.Access))

	buffer = append(buffer, byte(pool.ProjectShares.count))
	for _, share := range pool.ProjectShares.entries {
		buffer = append(buffer, share.ProjectKey[:]...)
		buffer = appendUint64(buffer, share.Share.Joined)
		buffer = appendUint64(buffer, share.Share.Contributed)
		buffer = appendUint64(buffer, share.Share.Votes)
	}

	return pad(buffer, PoolSpace)
}

// Pack - fixed size layout of a source
func (source *Source) Pack() (Packed, error) {
	err := source.Validate()
	if nil != err {
		return nil, err
	}

	buffer := Packed{byte(SourceTag)}
	buffer = appendString(buffer, source.Name)
	buffer = appendUint64(buffer, source.PoolId)
	buffer = appendUint64(buffer, source.Amount)
	buffer = appendAccount(buffer, source.Payer)

	return pad(buffer, SourceSpace)
}

// zero fill to the allocated space
func pad(buffer Packed, space int) (Packed, error) {
	if len(buffer) > space {
		return nil, fault.ErrRecordTooLarge
	}
	padded := make(Packed, space)
	copy(padded, buffer)
	return padded, nil
}

// append a single string
//
// the field is prefixed by a length byte
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, byte(len(s)))
	return append(buffer, s...)
}

// append an account
//
// the field is prefixed by a length byte
func appendAccount(buffer Packed, a *account.Account) Packed {
	data := a.Bytes()
	buffer = append(buffer, byte(len(data)))
	return append(buffer, data...)
}

// append a count byte then each admin
func appendAdmins(buffer Packed, admins AdminSet) Packed {
	buffer = append(buffer, byte(len(admins)))
	for _, admin := range admins {
		buffer = appendAccount(buffer, admin)
	}
	return buffer
}

// append a fixed width little endian integer
func appendUint64(buffer Packed, value uint64) Packed {
	b := make([]byte, uint64Space)
	binary.LittleEndian.PutUint64(b, value)
	return append(buffer, b...)
}
