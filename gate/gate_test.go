// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/gate"
	"github.com/bitmark-inc/stockpiled/record"
)

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, 32),
	}
}

func TestWindow(t *testing.T) {
	const now = 1600000000
	pool := &record.Pool{
		Start: now + 300,
		End:   now + 3600,
	}

	tests := []struct {
		at  uint64
		err error
	}{
		{0, fault.ErrPoolNotStarted},
		{now, fault.ErrPoolNotStarted},
		{now + 299, fault.ErrPoolNotStarted},
		{now + 300, nil},
		{now + 301, nil},
		{now + 3599, nil},
		{now + 3600, fault.ErrPoolEnded},
		{now + 3601, fault.ErrPoolEnded},
		{^uint64(0), fault.ErrPoolEnded},
	}

	for i, test := range tests {
		err := gate.Window(pool, test.at)
		assert.Equal(t, test.err, err, "%d: at: %d", i, test.at)
		if nil != err {
			assert.True(t, fault.IsErrWindow(err), "%d: class", i)
		}
	}
}

func TestWindowRetry(t *testing.T) {
	pool := &record.Pool{Start: 10, End: 20}
	assert.False(t, fault.IsPermanent(gate.Window(pool, 5)), "not started is retryable")
	assert.True(t, fault.IsPermanent(gate.Window(pool, 20)), "ended is permanent")
}

func TestAccess(t *testing.T) {
	admin := makeAccount(1)
	stranger := makeAccount(2)

	open := &record.Pool{Admins: record.AdminSet{admin}, Access: record.AccessOpen}
	assert.Nil(t, gate.Access(open, nil), "open, no authority")
	assert.Nil(t, gate.Access(open, stranger), "open, stranger")

	manual := &record.Pool{Admins: record.AdminSet{admin}, Access: record.AccessManual}
	assert.Nil(t, gate.Access(manual, admin), "manual, admin")
	assert.Nil(t, gate.Access(manual, makeAccount(1)), "manual, admin copy")

	err := gate.Access(manual, stranger)
	assert.Equal(t, fault.ErrNotPoolAdmin, err, "manual, stranger")
	assert.True(t, fault.IsErrUnauthorised(err), "class")

	assert.Equal(t, fault.ErrNotPoolAdmin, gate.Access(manual, nil), "manual, no authority")

	bad := &record.Pool{Access: record.Access(9)}
	assert.Equal(t, fault.ErrAccessMismatch, gate.Access(bad, admin), "unknown access")
}
