// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/rpc/project"
)

// ProjectData - fields of a new project
type ProjectData struct {
	ProjectId   uint64
	Name        string
	Admins      []*account.Account
	Beneficiary *account.Account
	Goal        uint64
	Payer       *account.PrivateKey
}

// CreateProject - sign and submit a new project
func (client *Client) CreateProject(data *ProjectData) (*project.CreateReply, error) {

	if err := client.checkNetwork(data.Payer); nil != err {
		return nil, err
	}

	arguments := &instruction.CreateProject{
		ProjectId:   data.ProjectId,
		Name:        data.Name,
		Admins:      record.AdminSet(data.Admins),
		Beneficiary: data.Beneficiary,
		Goal:        data.Goal,
		Payer:       data.Payer.Account(),
	}
	arguments.Signature = instruction.Sign(arguments, data.Payer)

	client.printJson("Project Request", arguments)

	var reply project.CreateReply
	err := client.client.Call("Project.Create", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Project Reply", reply)

	return &reply, nil
}

// GetProject - read a project by id
func (client *Client) GetProject(projectId uint64) (*project.GetReply, error) {

	arguments := &project.GetArguments{
		ProjectId: projectId,
	}

	var reply project.GetReply
	err := client.client.Call("Project.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
