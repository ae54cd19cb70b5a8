// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"sync/atomic"
)

// Connections - number of open client connections
type Connections struct {
	n uint64
}

// acquire - count a new connection, false if that exceeds maximum
//
// a refused connection is not counted
func (c *Connections) acquire(maximum uint64) bool {
	if atomic.AddUint64(&c.n, 1) <= maximum {
		return true
	}
	atomic.AddUint64(&c.n, ^uint64(0))
	return false
}

// release - a connection has closed
func (c *Connections) release() {
	atomic.AddUint64(&c.n, ^uint64(0))
}

// Current - connections open now
func (c *Connections) Current() uint64 {
	return atomic.LoadUint64(&c.n)
}
