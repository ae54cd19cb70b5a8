// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/stockpiled/address"
)

type addressReply struct {
	Kind    string          `json:"kind"`
	Address address.Address `json:"address"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var reply addressReply
	var err error

	switch {
	case c.IsSet("project"):
		reply.Kind = "project"
		reply.Address, err = address.ForProject(c.Uint64("project"))

	case c.IsSet("pool"):
		reply.Kind = "pool"
		reply.Address, err = address.ForPool(c.Uint64("pool"))

	case c.IsSet("source"):
		payer, e := checkAccount(c.String("payer"), m.testnet)
		if nil != e {
			return e
		}
		reply.Kind = "source"
		reply.Address, err = address.ForSource(c.String("source"), c.Uint64("source-pool"), c.Uint64("amount"), payer)

	default:
		return ErrRequiredSelection
	}
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
