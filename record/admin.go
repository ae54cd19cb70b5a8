// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"strings"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
)

// AdminSet - ordered capability list of accounts allowed to act for
// a record
type AdminSet []*account.Account

// Contains - membership by public key
func (admins AdminSet) Contains(a *account.Account) bool {
	if nil == a {
		return false
	}
	for _, admin := range admins {
		if nil != admin && bytes.Equal(admin.PublicKey, a.PublicKey) {
			return true
		}
	}
	return false
}

// Validate - non-empty, bounded and without repeats
func (admins AdminSet) Validate() error {
	if 0 == len(admins) {
		return fault.ErrAdminsMissing
	}
	if len(admins) > MaxAdmins {
		return fault.ErrTooManyAdmins
	}
	for i, admin := range admins {
		err := admin.Validate()
		if nil != err {
			return err
		}
		if admins[:i].Contains(admin) {
			return fault.ErrDuplicateAdmin
		}
	}
	return nil
}

// Access - who may add a project to a pool
type Access uint8

// access policies
const (
	AccessOpen   = Access(0) // any existing project may join
	AccessManual = Access(1) // a pool admin must authorise the join
)

// access names in text form
const (
	accessOpenText   = "open"
	accessManualText = "manual"
)

// AccessFromString - parse the text form of an access policy
func AccessFromString(s string) (Access, error) {
	switch strings.ToLower(s) {
	case accessOpenText:
		return AccessOpen, nil
	case accessManualText:
		return AccessManual, nil
	default:
		return AccessOpen, fault.ErrAccessMismatch
	}
}

// Valid - true for a known policy
func (access Access) Valid() bool {
	return AccessOpen == access || AccessManual == access
}

// String - text form of a policy
func (access Access) String() string {
	switch access {
	case AccessOpen:
		return accessOpenText
	case AccessManual:
		return accessManualText
	default:
		return "invalid"
	}
}

// MarshalText - convert to JSON text
func (access Access) MarshalText() ([]byte, error) {
	if !access.Valid() {
		return nil, fault.ErrAccessMismatch
	}
	return []byte(access.String()), nil
}

// UnmarshalText - convert JSON text to a policy
func (access *Access) UnmarshalText(s []byte) error {
	a, err := AccessFromString(string(s))
	if nil != err {
		return err
	}
	*access = a
	return nil
}
