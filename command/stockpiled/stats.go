// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/ledger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use and record counts
type memstats struct {
	log *logger.L
}

// Run - args is the ledger whose counts are reported
func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	l := args.(ledger.Ledger)

	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		a := s.Alloc / mega
		t := s.TotalAlloc / mega
		o := s.Sys / mega
		m.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, o)

		counts := l.Counts()
		m.log.Infof("records: projects: %d  pools: %d  sources: %d", counts.Projects, counts.Pools, counts.Sources)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}
