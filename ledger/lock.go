// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/stockpiled/address"
)

// per-address mutual exclusion
//
// entries exist only while some operation holds or waits for them
type lockTable struct {
	sync.Mutex
	entries map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	waiters int
}

func newLockTable() *lockTable {
	return &lockTable{
		entries: make(map[address.Address]*lockEntry),
	}
}

// lock - block until the address is free, returns the unlock function
func (l *lockTable) lock(a address.Address) func() {
	l.Lock()
	entry, ok := l.entries[a]
	if !ok {
		entry = &lockEntry{}
		l.entries[a] = entry
	}
	entry.waiters += 1
	l.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		l.Lock()
		entry.waiters -= 1
		if 0 == entry.waiters {
			delete(l.entries, a)
		}
		l.Unlock()
	}
}

// number of addresses currently held or waited on
func (l *lockTable) size() int {
	l.Lock()
	defer l.Unlock()
	return len(l.entries)
}
