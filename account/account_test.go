// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestValidBase58(t *testing.T) {
	for i, item := range testAccount {
		acc, err := account.AccountFromBase58(item.base58Account)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		assert.Equal(t, item.testnet, acc.IsTesting(), "%d: wrong network", i)
		assert.True(t, bytes.Equal(item.publicKey, acc.PublicKey), "%d: wrong public key", i)
		assert.Equal(t, item.base58Account, acc.String(), "%d: wrong base58", i)

		fromBytes, err := account.AccountFromBytes(acc.Bytes())
		assert.Nil(t, err, "%d: from bytes", i)
		assert.True(t, acc.Equal(fromBytes), "%d: bytes round trip", i)
	}
}

func TestInvalidBase58(t *testing.T) {
	// last character altered to break the checksum
	_, err := account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCk")
	assert.Equal(t, fault.ErrChecksumMismatch, err, "wrong checksum error")

	_, err = account.AccountFromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "non-base58 accepted")

	_, err = account.AccountFromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")

	_, err = account.AccountFromBytes(append([]byte{0x10}, make([]byte, 32)...))
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key variant accepted")
}

func TestValidate(t *testing.T) {
	a := &account.Account{Test: true, PublicKey: make([]byte, 32)}
	assert.Nil(t, a.Validate(), "complete key")

	a.PublicKey = make([]byte, 31)
	assert.Equal(t, fault.ErrInvalidKeyLength, a.Validate(), "short key")

	a.PublicKey = make([]byte, 33)
	assert.Equal(t, fault.ErrInvalidKeyLength, a.Validate(), "long key")

	a.PublicKey = nil
	assert.Equal(t, fault.ErrInvalidKeyLength, a.Validate(), "empty key")

	var missing *account.Account
	assert.Equal(t, fault.ErrInvalidAccount, missing.Validate(), "nil account")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner *account.Account `json:"owner"`
	}

	item := testAccount[1]
	s := `{"owner":"` + item.base58Account + `"}`

	var h holder
	err := json.Unmarshal([]byte(s), &h)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, bytes.Equal(item.publicKey, h.Owner.PublicKey), "wrong public key")

	b, err := json.Marshal(h)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, s, string(b), "wrong JSON")
}

func TestEqual(t *testing.T) {
	a, _ := account.AccountFromBase58(testAccount[1].base58Account)
	b, _ := account.AccountFromBase58(testAccount[1].base58Account)
	c, _ := account.AccountFromBase58(testAccount[2].base58Account)

	assert.True(t, a.Equal(b), "same account")
	assert.False(t, a.Equal(c), "different accounts")
	assert.False(t, a.Equal(nil), "nil account")

	live := &account.Account{Test: false, PublicKey: a.PublicKey}
	assert.False(t, a.Equal(live), "network bit ignored")
}
