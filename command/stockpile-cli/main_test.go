// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
)

// run the app capturing its output
func run(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"stockpile-cli"}, args...))
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "--network=testing", "generate")
	require.Nil(t, err, "generate")

	var reply struct {
		PrivateKey string `json:"privateKey"`
		Account    string `json:"account"`
	}
	err = json.Unmarshal([]byte(out), &reply)
	require.Nil(t, err, "output is not JSON: %s", out)

	privateKey, err := account.PrivateKeyFromBase58(reply.PrivateKey)
	require.Nil(t, err, "private key")
	assert.True(t, privateKey.Account().IsTesting(), "wrong network")
	assert.Equal(t, privateKey.Account().String(), reply.Account, "account mismatch")
}

func TestAddress(t *testing.T) {
	out, err := run(t, "address", "--project=12")
	require.Nil(t, err, "project address")

	expected, _ := address.ForProject(12)
	assert.Contains(t, out, expected.String(), "wrong project address")

	out, err = run(t, "address", "--pool=12")
	require.Nil(t, err, "pool address")

	expected, _ = address.ForPool(12)
	assert.Contains(t, out, expected.String(), "wrong pool address")
}

func TestAddressSource(t *testing.T) {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{0x50}, 32))
	require.Nil(t, err, "private key")
	payer := privateKey.Account()

	out, err := run(t, "address", "--source=Buffalo Joe", "--source-pool=3", "--amount=1000", "--payer="+payer.String())
	require.Nil(t, err, "source address")

	expected, _ := address.ForSource("Buffalo Joe", 3, 1000, payer)
	assert.Contains(t, out, expected.String(), "wrong source address")

	_, err = run(t, "--network=live", "address", "--source=Buffalo Joe", "--source-pool=3", "--amount=1000", "--payer="+payer.String())
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "test account accepted on live")
}

func TestAddressWithoutSelection(t *testing.T) {
	_, err := run(t, "address")
	assert.Equal(t, ErrRequiredSelection, err, "wrong error")
}

func TestBadNetwork(t *testing.T) {
	_, err := run(t, "--network=moon", "generate")
	assert.NotNil(t, err, "unknown network accepted")
}

func TestCreateWithoutKey(t *testing.T) {
	_, err := run(t, "create-project", "--id=1", "--name=x", "--key=")
	assert.Equal(t, ErrRequiredPrivateKey, err, "missing key accepted")
}
