// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/stockpiled/command/stockpile-cli/rpccalls"
)

func runJoinPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := checkPrivateKey(c.String("key"), m.testnet)
	if nil != err {
		return err
	}
	authority, err := checkOptionalPrivateKey(c.String("authority-key"), m.testnet)
	if nil != err {
		return err
	}

	data := &rpccalls.JoinData{
		ProjectId: c.Uint64("project"),
		PoolId:    c.Uint64("pool"),
		Payer:     payer,
		Authority: authority,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "project: %d  pool: %d\n", data.ProjectId, data.PoolId)
		if nil != authority {
			fmt.Fprintf(m.e, "authority: %s\n", authority.Account())
		}
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.JoinPool(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
