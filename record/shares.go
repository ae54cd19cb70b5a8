// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
)

// ShareMetadata - state of one project's participation in a pool
type ShareMetadata struct {
	Joined      uint64 `json:"joined"`             // unix seconds from the trusted clock
	Contributed uint64 `json:"contributed,string"` // amount credited to the project
	Votes       uint64 `json:"votes,string"`       // votes received
}

// ProjectShare - a project's entry in a pool
type ProjectShare struct {
	ProjectKey address.Address `json:"projectKey"` // derived project address
	Share      ShareMetadata   `json:"share"`
}

// Shares - fixed capacity list of project shares, unique by project key
//
// entries beyond count are always zero
type Shares struct {
	count   int
	entries [MaximumProjectShares]ProjectShare
}

// Len - number of entries in use
func (shares *Shares) Len() int {
	return shares.count
}

// Full - no free entries
func (shares *Shares) Full() bool {
	return shares.count >= MaximumProjectShares
}

// At - entry at index i, which must be less than Len
func (shares *Shares) At(i int) ProjectShare {
	if i < 0 || i >= shares.count {
		panic("record: share index out of range")
	}
	return shares.entries[i]
}

// Contains - true if the project already has an entry
func (shares *Shares) Contains(projectKey address.Address) bool {
	for i := 0; i < shares.count; i += 1 {
		if projectKey == shares.entries[i].ProjectKey {
			return true
		}
	}
	return false
}

// Append - add an entry at the end
//
// the list is unchanged on error
func (shares *Shares) Append(share ProjectShare) error {
	if shares.Contains(share.ProjectKey) {
		return fault.ErrProjectAlreadyJoined
	}
	if shares.Full() {
		return fault.ErrPoolFull
	}
	shares.entries[shares.count] = share
	shares.count += 1
	return nil
}

// Entries - copy of the entries in use, in insertion order
func (shares *Shares) Entries() []ProjectShare {
	entries := make([]ProjectShare, shares.count)
	copy(entries, shares.entries[:shares.count])
	return entries
}

// MarshalJSON - entries in use as a JSON list
func (shares Shares) MarshalJSON() ([]byte, error) {
	return json.Marshal(shares.Entries())
}

// UnmarshalJSON - rebuild from a JSON list
func (shares *Shares) UnmarshalJSON(b []byte) error {
	var entries []ProjectShare
	err := json.Unmarshal(b, &entries)
	if nil != err {
		return err
	}
	s := Shares{}
	for _, e := range entries {
		err := s.Append(e)
		if nil != err {
			return err
		}
	}
	*shares = s
	return nil
}
