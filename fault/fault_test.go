// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"testing"

	"github.com/bitmark-inc/stockpiled/fault"
)

var (
	ErrCapacityOne     = fault.CapacityError("capacity one")
	ErrDuplicateOne    = fault.DuplicateError("duplicate one")
	ErrExistsOne       = fault.ExistsError("exists one")
	ErrExistsTwo       = fault.ExistsError("exists two")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrUnauthorisedOne = fault.UnauthorisedError("unauthorised one")
	ErrWindowOne       = fault.WindowError("window one")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		capacity     bool
		duplicate    bool
		exists       bool
		invalid      bool
		notFound     bool
		process      bool
		unauthorised bool
		window       bool
	}{
		{ErrCapacityOne, true, false, false, false, false, false, false, false},
		{ErrDuplicateOne, false, true, false, false, false, false, false, false},
		{ErrExistsOne, false, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false, false},
		{ErrUnauthorisedOne, false, false, false, false, false, false, true, false},
		{ErrWindowOne, false, false, false, false, false, false, false, true},
		{fault.ErrPoolFull, true, false, false, false, false, false, false, false},
		{fault.ErrProjectAlreadyJoined, false, true, false, false, false, false, false, false},
		{fault.ErrRecordAlreadyExists, false, false, true, false, false, false, false, false},
		{fault.ErrGoalTooSmall, false, false, false, true, false, false, false, false},
		{fault.ErrPoolNotFound, false, false, false, false, true, false, false, false},
		{fault.ErrNotPoolAdmin, false, false, false, false, false, false, true, false},
		{fault.ErrPoolEnded, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrCapacity(err) != e.capacity {
			t.Errorf("%d: expected 'capacity' == %v for err = %v", i, e.capacity, err)
		}
		if fault.IsErrDuplicate(err) != e.duplicate {
			t.Errorf("%d: expected 'duplicate' == %v for err = %v", i, e.duplicate, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnauthorised(err) != e.unauthorised {
			t.Errorf("%d: expected 'unauthorised' == %v for err = %v", i, e.unauthorised, err)
		}
		if fault.IsErrWindow(err) != e.window {
			t.Errorf("%d: expected 'window' == %v for err = %v", i, e.window, err)
		}
	}
}

func TestIsPermanent(t *testing.T) {
	permanent := []error{
		fault.ErrPoolFull,
		fault.ErrProjectAlreadyJoined,
		fault.ErrRecordAlreadyExists,
		fault.ErrSourceAmountTooSmall,
		fault.ErrNotPoolAdmin,
		fault.ErrPoolEnded,
	}
	for i, err := range permanent {
		if !fault.IsPermanent(err) {
			t.Errorf("%d: expected permanent for err = %v", i, err)
		}
	}

	transient := []error{
		nil,
		fault.ErrPoolNotStarted,
		fault.ErrRateLimiting,
		fault.ErrTransactionFinished,
	}
	for i, err := range transient {
		if fault.IsPermanent(err) {
			t.Errorf("%d: expected transient for err = %v", i, err)
		}
	}
}

// the common error block must stay sorted by name
func TestAlphabeticOrder(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "fault.go", nil, 0)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	names := []string{}
	for _, decl := range file.Decls {
		g, ok := decl.(*ast.GenDecl)
		if !ok || token.VAR != g.Tok {
			continue
		}
		for _, s := range g.Specs {
			for _, name := range s.(*ast.ValueSpec).Names {
				names = append(names, name.Name)
			}
		}
	}

	if 0 == len(names) {
		t.Fatal("no errors found")
	}
	if !sort.StringsAreSorted(names) {
		for i := 1; i < len(names); i += 1 {
			if names[i-1] > names[i] {
				t.Errorf("out of order: %s before %s", names[i-1], names[i])
			}
		}
	}
}
