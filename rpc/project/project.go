// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package project - RPC service for project records
package project

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/rpc/ratelimit"
)

const (
	rateLimitProject = 200
	rateBurstProject = 100
)

// Project - type for RPC calls
type Project struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the project service
func New(log *logger.L, l ledger.Ledger) *Project {
	return &Project{
		Log:     log,
		Limiter: ratelimit.New(rateLimitProject, rateBurstProject),
		Ledger:  l,
	}
}

// ---

// CreateReply - result of creating a project
type CreateReply struct {
	Address address.Address `json:"address"`
	Space   int             `json:"space"`
}

// Create - store a new signed project
func (project *Project) Create(arguments *instruction.CreateProject, reply *CreateReply) error {

	if err := ratelimit.Limit(project.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	project.Log.Infof("Project.Create: id: %d  name: %q", arguments.ProjectId, arguments.Name)

	created, err := project.Ledger.CreateProject(arguments)
	if nil != err {
		return err
	}

	reply.Address = created.Address
	reply.Space = created.Space
	return nil
}

// ---

// GetArguments - select a project by address or by id
type GetArguments struct {
	ProjectId uint64           `json:"projectId,string"`
	Address   *address.Address `json:"address,omitempty"`
}

// GetReply - a stored project
type GetReply struct {
	Address address.Address `json:"address"`
	Project *record.Project `json:"project"`
}

// Get - read a project
func (project *Project) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(project.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a := arguments.Address
	if nil == a {
		derived, err := address.ForProject(arguments.ProjectId)
		if nil != err {
			return err
		}
		a = &derived
	}

	p, err := project.Ledger.Project(*a)
	if nil != err {
		return err
	}

	reply.Address = *a
	reply.Project = p
	return nil
}
