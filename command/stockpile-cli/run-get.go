// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/command/stockpile-cli/rpccalls"
)

func runProject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c.Args().First())
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetProject(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c.Args().First())
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetPool(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSource(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := address.FromBase58(c.Args().First())
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetSource(a)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
