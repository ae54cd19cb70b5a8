// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"
)

// Clock - trusted source of the current time
//
// callers never supply the time used by the window gate
type Clock interface {
	Now() time.Time
}

// SystemClock - the host clock
type SystemClock struct{}

// Now - current host time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// unix seconds, times before the epoch count as zero
func unixSeconds(t time.Time) uint64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}
