// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
)

// common errors - keep in alphabetic order
var (
	ErrRequiredAccount    = fault.InvalidError("account is required")
	ErrRequiredAdmin      = fault.InvalidError("at least one admin is required")
	ErrRequiredId         = fault.InvalidError("id is required")
	ErrRequiredName       = fault.InvalidError("name is required")
	ErrRequiredPrivateKey = fault.InvalidError("private key is required")
	ErrRequiredSelection  = fault.InvalidError("select one of project, pool or source")
)

// the payer key must be present and for the selected network
func checkPrivateKey(key string, testnet bool) (*account.PrivateKey, error) {
	if "" == key {
		return nil, ErrRequiredPrivateKey
	}
	privateKey, err := account.PrivateKeyFromBase58(key)
	if nil != err {
		return nil, err
	}
	if testnet != privateKey.Account().IsTesting() {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return privateKey, nil
}

// optional key, nil if blank
func checkOptionalPrivateKey(key string, testnet bool) (*account.PrivateKey, error) {
	if "" == key {
		return nil, nil
	}
	return checkPrivateKey(key, testnet)
}

func checkAccount(s string, testnet bool) (*account.Account, error) {
	if "" == s {
		return nil, ErrRequiredAccount
	}
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if testnet != a.IsTesting() {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}

func checkAdmins(list []string, testnet bool) ([]*account.Account, error) {
	if 0 == len(list) {
		return nil, ErrRequiredAdmin
	}
	admins := make([]*account.Account, len(list))
	for i, s := range list {
		a, err := checkAccount(s, testnet)
		if nil != err {
			return nil, err
		}
		admins[i] = a
	}
	return admins, nil
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

// positional numeric id
func checkId(s string) (uint64, error) {
	if "" == s {
		return 0, ErrRequiredId
	}
	return strconv.ParseUint(s, 10, 64)
}
