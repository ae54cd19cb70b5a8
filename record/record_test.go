// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/record"
)

// deterministic test network account
func makeAccount(t *testing.T, b byte) *account.Account {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{b}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey.Account()
}

// an account whose key is one byte short
func shortKey() *account.Account {
	return &account.Account{Test: true, PublicKey: make([]byte, 31)}
}

func makeProject(t *testing.T) *record.Project {
	return &record.Project{
		ProjectId:   1,
		Name:        "Clean water",
		Admins:      record.AdminSet{makeAccount(t, 1), makeAccount(t, 2)},
		Beneficiary: makeAccount(t, 3),
		Goal:        1000,
	}
}

func makePool(t *testing.T) *record.Pool {
	return &record.Pool{
		PoolId: 7,
		Name:   "Spring round",
		Start:  1000,
		End:    2000,
		Admins: record.AdminSet{makeAccount(t, 4)},
		Access: record.AccessManual,
	}
}

func makeSource(t *testing.T) *record.Source {
	return &record.Source{
		Name:   "Buffalo Joe",
		PoolId: 7,
		Amount: 1000000,
		Payer:  makeAccount(t, 5),
	}
}

func TestValidateProject(t *testing.T) {
	p := makeProject(t)
	assert.Nil(t, p.Validate(), "valid project")

	tests := []struct {
		modify func(p *record.Project)
		err    error
	}{
		{func(p *record.Project) { p.Name = "" }, fault.ErrNameTooShort},
		{func(p *record.Project) { p.Name = strings.Repeat("n", record.MaxNameLength+1) }, fault.ErrNameTooLong},
		{func(p *record.Project) { p.Name = "\xff\xfe" }, fault.ErrInvalidName},
		{func(p *record.Project) { p.Admins = nil }, fault.ErrAdminsMissing},
		{func(p *record.Project) { p.Admins = append(p.Admins, p.Admins[0]) }, fault.ErrDuplicateAdmin},
		{func(p *record.Project) { p.Admins = record.AdminSet{nil} }, fault.ErrInvalidAccount},
		{func(p *record.Project) { p.Beneficiary = nil }, fault.ErrInvalidAccount},
		{func(p *record.Project) { p.Admins[1] = shortKey() }, fault.ErrInvalidKeyLength},
		{func(p *record.Project) { p.Beneficiary = shortKey() }, fault.ErrInvalidKeyLength},
		{func(p *record.Project) { p.Goal = 0 }, fault.ErrGoalTooSmall},
	}

	for i, test := range tests {
		p := makeProject(t)
		test.modify(p)
		assert.Equal(t, test.err, p.Validate(), "%d: wrong error", i)
	}

	p = makeProject(t)
	p.Name = strings.Repeat("n", record.MaxNameLength)
	assert.Nil(t, p.Validate(), "maximum name rejected")
}

func TestTooManyAdmins(t *testing.T) {
	admins := record.AdminSet{}
	for i := 0; i < record.MaxAdmins; i += 1 {
		admins = append(admins, makeAccount(t, byte(10+i)))
	}
	assert.Nil(t, admins.Validate(), "maximum admins rejected")

	admins = append(admins, makeAccount(t, 99))
	assert.Equal(t, fault.ErrTooManyAdmins, admins.Validate(), "too many admins accepted")
}

func TestValidatePool(t *testing.T) {
	p := makePool(t)
	assert.Nil(t, p.Validate(), "valid pool")

	p.End = p.Start
	assert.Equal(t, fault.ErrInvalidWindow, p.Validate(), "start == end")

	p.End = p.Start - 1
	assert.Equal(t, fault.ErrInvalidWindow, p.Validate(), "start > end")

	p = makePool(t)
	p.Access = record.Access(2)
	assert.Equal(t, fault.ErrAccessMismatch, p.Validate(), "bad access")

	p = makePool(t)
	p.Admins = record.AdminSet{}
	assert.Equal(t, fault.ErrAdminsMissing, p.Validate(), "no admins")
}

func TestValidateSource(t *testing.T) {
	s := makeSource(t)
	assert.Nil(t, s.Validate(), "valid source")

	s.Amount = 0
	assert.Equal(t, fault.ErrSourceAmountTooSmall, s.Validate(), "zero amount")
	assert.True(t, fault.IsErrInvalid(s.Validate()), "zero amount class")

	s = makeSource(t)
	s.Name = strings.Repeat("s", record.MaxSourceNameLength+1)
	assert.Equal(t, fault.ErrNameTooLong, s.Validate(), "long name")

	s = makeSource(t)
	s.Payer = nil
	assert.Equal(t, fault.ErrMissingPayer, s.Validate(), "no payer")

	s = makeSource(t)
	s.Payer = shortKey()
	assert.Equal(t, fault.ErrInvalidKeyLength, s.Validate(), "short payer key")

	pool := makePool(t)
	pool.Admins = record.AdminSet{shortKey()}
	assert.Equal(t, fault.ErrInvalidKeyLength, pool.Validate(), "short admin key")
	_, err := pool.Pack()
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short admin key packed")
}

func TestAdminContains(t *testing.T) {
	admins := record.AdminSet{makeAccount(t, 1), makeAccount(t, 2)}
	assert.True(t, admins.Contains(makeAccount(t, 2)), "admin missing")
	assert.False(t, admins.Contains(makeAccount(t, 3)), "stranger found")
	assert.False(t, admins.Contains(nil), "nil found")
}

func TestAccessText(t *testing.T) {
	for _, a := range []record.Access{record.AccessOpen, record.AccessManual} {
		s, err := a.MarshalText()
		assert.Nil(t, err, "marshal")
		var b record.Access
		err = b.UnmarshalText(s)
		assert.Nil(t, err, "unmarshal")
		assert.Equal(t, a, b, "round trip")
	}

	_, err := record.AccessFromString("restricted")
	assert.Equal(t, fault.ErrAccessMismatch, err, "unknown access")

	a, err := record.AccessFromString("Manual")
	assert.Nil(t, err, "case")
	assert.Equal(t, record.AccessManual, a, "case")
}

func TestPackedSizes(t *testing.T) {
	p, err := makeProject(t).Pack()
	assert.Nil(t, err, "project pack")
	assert.Equal(t, record.ProjectSpace, len(p), "project space")
	assert.Equal(t, record.ProjectTag, p.Type(), "project tag")

	q, err := makePool(t).Pack()
	assert.Nil(t, err, "pool pack")
	assert.Equal(t, record.PoolSpace, len(q), "pool space")

	s, err := makeSource(t).Pack()
	assert.Nil(t, err, "source pack")
	assert.Equal(t, record.SourceSpace, len(s), "source space")
}

func TestPackInvalid(t *testing.T) {
	p := makeProject(t)
	p.Goal = 0
	_, err := p.Pack()
	assert.Equal(t, fault.ErrGoalTooSmall, err, "invalid project packed")
}

func TestPoolGrowsInPlace(t *testing.T) {
	pool := makePool(t)
	empty, err := pool.Pack()
	assert.Nil(t, err, "pack empty")

	key, _ := address.ForProject(1)
	err = pool.ProjectShares.Append(record.ProjectShare{ProjectKey: key, Share: record.ShareMetadata{Joined: 1500}})
	assert.Nil(t, err, "append")

	joined, err := pool.Pack()
	assert.Nil(t, err, "pack joined")
	assert.Equal(t, len(empty), len(joined), "pool record changed size")
	assert.NotEqual(t, empty, joined, "share not stored")
}

func TestUnpack(t *testing.T) {
	project := makeProject(t)
	pool := makePool(t)
	for i := uint64(1); i <= 3; i += 1 {
		key, _ := address.ForProject(i)
		err := pool.ProjectShares.Append(record.ProjectShare{
			ProjectKey: key,
			Share:      record.ShareMetadata{Joined: 1000 + i, Contributed: i, Votes: 2 * i},
		})
		assert.Nil(t, err, "append")
	}
	source := makeSource(t)

	for i, r := range []record.Record{project, pool, source} {
		packed, err := r.Pack()
		assert.Nil(t, err, "%d: pack", i)

		unpacked, err := packed.Unpack(true)
		assert.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, r, unpacked, "%d: round trip", i)

		_, err = packed.Unpack(false)
		assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "%d: network", i)
	}
}

func TestUnpackCorrupt(t *testing.T) {
	packed, err := makePool(t).Pack()
	assert.Nil(t, err, "pack")

	_, err = packed[:len(packed)-1].Unpack(true)
	assert.Equal(t, fault.ErrNotRecordPack, err, "short record")

	_, err = record.Packed{}.Unpack(true)
	assert.Equal(t, fault.ErrNotRecordPack, err, "empty record")

	bad := append(record.Packed{}, packed...)
	bad[0] = byte(record.InvalidTag)
	_, err = bad.Unpack(true)
	assert.Equal(t, fault.ErrNotRecordPack, err, "bad tag")

	// swap start and end
	bad = append(record.Packed{}, packed...)
	start := 1 + 8 + 1 + len("Spring round")
	copy(bad[start:start+8], packed[start+8:start+16])
	copy(bad[start+8:start+16], packed[start:start+8])
	_, err = bad.Unpack(true)
	assert.Equal(t, fault.ErrNotRecordPack, err, "invalid window")
}

func TestJSON(t *testing.T) {
	pool := makePool(t)
	key, _ := address.ForProject(42)
	err := pool.ProjectShares.Append(record.ProjectShare{ProjectKey: key})
	assert.Nil(t, err, "append")

	b, err := json.Marshal(pool)
	assert.Nil(t, err, "marshal")
	assert.Contains(t, string(b), `"access":"manual"`, "access text")
	assert.Contains(t, string(b), key.String(), "project key text")

	var decoded record.Pool
	err = json.Unmarshal(b, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, pool, &decoded, "round trip")
}
