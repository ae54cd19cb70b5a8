// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"

	"github.com/bitmark-inc/stockpiled/fault"
)

// Validate - check the project invariants
func (project *Project) Validate() error {
	err := validateName(project.Name, MaxNameLength)
	if nil != err {
		return err
	}
	err = project.Admins.Validate()
	if nil != err {
		return err
	}
	err = project.Beneficiary.Validate()
	if nil != err {
		return err
	}
	if 0 == project.Goal {
		return fault.ErrGoalTooSmall
	}
	return nil
}

// Validate - check the pool invariants
func (pool *Pool) Validate() error {
	err := validateName(pool.Name, MaxNameLength)
	if nil != err {
		return err
	}
	if pool.Start >= pool.End {
		return fault.ErrInvalidWindow
	}
	err = pool.Admins.Validate()
	if nil != err {
		return err
	}
	if !pool.Access.Valid() {
		return fault.ErrAccessMismatch
	}
	return nil
}

// Validate - check the source invariants
func (source *Source) Validate() error {
	err := validateName(source.Name, MaxSourceNameLength)
	if nil != err {
		return err
	}
	if 0 == source.Amount {
		return fault.ErrSourceAmountTooSmall
	}
	if nil == source.Payer {
		return fault.ErrMissingPayer
	}
	return source.Payer.Validate()
}

// names are bounded in bytes since that is what is stored
func validateName(name string, maximum int) error {
	if len(name) < MinNameLength {
		return fault.ErrNameTooShort
	}
	if len(name) > maximum {
		return fault.ErrNameTooLong
	}
	if !utf8.ValidString(name) {
		return fault.ErrInvalidName
	}
	return nil
}
