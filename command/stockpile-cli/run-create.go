// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/stockpiled/command/stockpile-cli/rpccalls"
	"github.com/bitmark-inc/stockpiled/record"
)

func runCreateProject(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := checkPrivateKey(c.String("key"), m.testnet)
	if nil != err {
		return err
	}
	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	admins, err := checkAdmins(c.StringSlice("admin"), m.testnet)
	if nil != err {
		return err
	}
	beneficiary, err := checkAccount(c.String("beneficiary"), m.testnet)
	if nil != err {
		return err
	}

	data := &rpccalls.ProjectData{
		ProjectId:   c.Uint64("id"),
		Name:        name,
		Admins:      admins,
		Beneficiary: beneficiary,
		Goal:        c.Uint64("goal"),
		Payer:       payer,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "project: %d  name: %q  goal: %d\n", data.ProjectId, data.Name, data.Goal)
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateProject(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCreatePool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := checkPrivateKey(c.String("key"), m.testnet)
	if nil != err {
		return err
	}
	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	admins, err := checkAdmins(c.StringSlice("admin"), m.testnet)
	if nil != err {
		return err
	}
	access, err := record.AccessFromString(c.String("access"))
	if nil != err {
		return err
	}

	data := &rpccalls.PoolData{
		PoolId: c.Uint64("id"),
		Name:   name,
		Start:  c.Uint64("start"),
		End:    c.Uint64("end"),
		Admins: admins,
		Access: access,
		Payer:  payer,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %d  name: %q  window: [%d, %d)  access: %s\n", data.PoolId, data.Name, data.Start, data.End, data.Access)
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreatePool(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCreateSource(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := checkPrivateKey(c.String("key"), m.testnet)
	if nil != err {
		return err
	}
	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	data := &rpccalls.SourceData{
		Name:   name,
		PoolId: c.Uint64("pool"),
		Amount: c.Uint64("amount"),
		Payer:  payer,
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateSource(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
