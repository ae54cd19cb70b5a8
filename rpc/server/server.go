// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/rpc/listeners"
	"github.com/bitmark-inc/stockpiled/rpc/node"
	"github.com/bitmark-inc/stockpiled/rpc/pool"
	"github.com/bitmark-inc/stockpiled/rpc/project"
	"github.com/bitmark-inc/stockpiled/rpc/source"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chain string, count *listeners.Connections, l ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(project.New(log, l))
	_ = server.Register(pool.New(log, l))
	_ = server.Register(source.New(log, l))
	_ = server.Register(node.New(log, l, start, version, chain, count))

	return server
}
