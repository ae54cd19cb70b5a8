// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gate - checks a join must pass before a pool is modified
package gate

import (
	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/record"
)

// Window - check that a pool is accepting joins at time now
//
// start is inclusive and end is exclusive
func Window(pool *record.Pool, now uint64) error {
	if now < pool.Start {
		return fault.ErrPoolNotStarted
	}
	if now >= pool.End {
		return fault.ErrPoolEnded
	}
	return nil
}

// Access - check that the authority may add a project to the pool
//
// open pools accept any authority, including none
func Access(pool *record.Pool, authority *account.Account) error {
	switch pool.Access {
	case record.AccessOpen:
		return nil
	case record.AccessManual:
		if pool.Admins.Contains(authority) {
			return nil
		}
		return fault.ErrNotPoolAdmin
	default:
		return fault.ErrAccessMismatch
	}
}
