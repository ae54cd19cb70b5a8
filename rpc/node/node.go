// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC service describing the daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/rpc/listeners"
	"github.com/bitmark-inc/stockpiled/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Chain       string
	Ledger      ledger.Ledger
	connections *listeners.Connections
}

// New - create the node service
func New(log *logger.L, l ledger.Ledger, start time.Time, version string, chain string, connections *listeners.Connections) *Node {
	return &Node{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Chain:       chain,
		Ledger:      l,
		connections: connections,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string        `json:"chain"`
	Testing bool          `json:"testing"`
	RPCs    uint64        `json:"rpcs"`
	Records ledger.Counts `json:"records"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Testing = node.Ledger.IsTesting()
	if nil != node.connections {
		reply.RPCs = node.connections.Current()
	}
	reply.Records = node.Ledger.Counts()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
