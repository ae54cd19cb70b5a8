// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
)

func makeKey(t *testing.T, test bool, b byte) *account.PrivateKey {
	privateKey, err := account.PrivateKeyFromSeed(test, bytes.Repeat([]byte{b}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey
}

func TestCreateProject(t *testing.T) {
	payer := makeKey(t, true, 1)
	c := &instruction.CreateProject{
		ProjectId:   5,
		Name:        "Wells",
		Admins:      record.AdminSet{makeKey(t, true, 2).Account()},
		Beneficiary: makeKey(t, true, 3).Account(),
		Goal:        100,
		Payer:       payer.Account(),
	}
	c.Signature = instruction.Sign(c, payer)
	assert.Nil(t, c.Verify(true), "signed")

	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, c.Verify(false), "wrong network")

	// any field change breaks the signature
	c.Goal = 101
	assert.Equal(t, fault.ErrInvalidSignature, c.Verify(true), "modified goal")

	// invalid records are still signed messages, validation comes later
	c.Goal = 0
	c.Signature = instruction.Sign(c, payer)
	assert.Nil(t, c.Verify(true), "zero goal")
	assert.Equal(t, fault.ErrGoalTooSmall, c.Record().Validate(), "record validation")
}

func TestCreatePool(t *testing.T) {
	payer := makeKey(t, true, 1)
	c := &instruction.CreatePool{
		PoolId: 9,
		Name:   "Round",
		Start:  10,
		End:    20,
		Admins: record.AdminSet{payer.Account()},
		Access: record.AccessManual,
		Payer:  payer.Account(),
	}
	c.Signature = instruction.Sign(c, payer)
	assert.Nil(t, c.Verify(true), "signed")

	c.Access = record.AccessOpen
	assert.Equal(t, fault.ErrInvalidSignature, c.Verify(true), "modified access")

	// signed by someone else
	c.Signature = instruction.Sign(c, makeKey(t, true, 2))
	assert.Equal(t, fault.ErrInvalidSignature, c.Verify(true), "foreign signature")

	r := c.Record()
	assert.Equal(t, uint64(9), r.PoolId, "pool id")
	assert.Equal(t, 0, r.ProjectShares.Len(), "new pool has shares")
}

func TestCreateSource(t *testing.T) {
	payer := makeKey(t, false, 1)
	c := &instruction.CreateSource{
		Name:   "Buffalo Joe",
		PoolId: 1,
		Amount: 1000000,
		Payer:  payer.Account(),
	}
	c.Signature = instruction.Sign(c, payer)
	assert.Nil(t, c.Verify(false), "signed")
	assert.Equal(t, payer.Account(), c.Record().Payer, "payer not recorded")

	c.Payer = nil
	assert.Equal(t, fault.ErrMissingPayer, c.Verify(false), "no payer")
}

func TestMessagesDiffer(t *testing.T) {
	payer := makeKey(t, true, 1).Account()
	j := &instruction.JoinPool{ProjectId: 1, PoolId: 2, Payer: payer}
	k := &instruction.JoinPool{ProjectId: 2, PoolId: 1, Payer: payer}
	assert.NotEqual(t, j.Message(), k.Message(), "ids swapped")

	s := &instruction.CreateSource{Name: "x", PoolId: 1, Amount: 2, Payer: payer}
	assert.NotEqual(t, j.Message()[:10], s.Message()[:10], "operation ignored")
}

func TestJoinOpen(t *testing.T) {
	payer := makeKey(t, true, 1)
	j := &instruction.JoinPool{ProjectId: 1, PoolId: 2, Payer: payer.Account()}
	j.Signature = instruction.Sign(j, payer)
	assert.Nil(t, j.Verify(true), "no authority")

	j.Countersignature = account.Signature(bytes.Repeat([]byte{1}, 64))
	assert.Equal(t, fault.ErrUnexpectedCountersignature, j.Verify(true), "stray countersignature")
}

func TestJoinAuthorityIsPayer(t *testing.T) {
	payer := makeKey(t, true, 1)
	j := &instruction.JoinPool{ProjectId: 1, PoolId: 2, Authority: payer.Account(), Payer: payer.Account()}
	j.Signature = instruction.Sign(j, payer)
	assert.Nil(t, j.Verify(true), "payer authority")
}

func TestJoinCountersigned(t *testing.T) {
	payer := makeKey(t, true, 1)
	admin := makeKey(t, true, 2)

	j := &instruction.JoinPool{ProjectId: 1, PoolId: 2, Authority: admin.Account(), Payer: payer.Account()}
	j.Signature = instruction.Sign(j, payer)
	assert.Equal(t, fault.ErrMissingCountersignature, j.Verify(true), "missing countersignature")

	j.Countersign(makeKey(t, true, 3))
	assert.Equal(t, fault.ErrInvalidSignature, j.Verify(true), "impostor countersignature")

	j.Countersign(admin)
	assert.Nil(t, j.Verify(true), "countersigned")

	// the authority cannot be replaced after signing
	j.Authority = makeKey(t, true, 3).Account()
	assert.Equal(t, fault.ErrInvalidSignature, j.Verify(true), "replaced authority")
}
