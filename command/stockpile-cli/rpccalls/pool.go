// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/record"
	"github.com/bitmark-inc/stockpiled/rpc/pool"
)

// PoolData - fields of a new pool
type PoolData struct {
	PoolId uint64
	Name   string
	Start  uint64
	End    uint64
	Admins []*account.Account
	Access record.Access
	Payer  *account.PrivateKey
}

// JoinData - a project joining a pool
//
// Authority is only needed when it is not the payer, e.g. the admin
// of a manual pool countersigning for someone else
type JoinData struct {
	ProjectId uint64
	PoolId    uint64
	Payer     *account.PrivateKey
	Authority *account.PrivateKey
}

// CreatePool - sign and submit a new pool
func (client *Client) CreatePool(data *PoolData) (*pool.CreateReply, error) {

	if err := client.checkNetwork(data.Payer); nil != err {
		return nil, err
	}

	arguments := &instruction.CreatePool{
		PoolId: data.PoolId,
		Name:   data.Name,
		Start:  data.Start,
		End:    data.End,
		Admins: record.AdminSet(data.Admins),
		Access: data.Access,
		Payer:  data.Payer.Account(),
	}
	arguments.Signature = instruction.Sign(arguments, data.Payer)

	client.printJson("Pool Request", arguments)

	var reply pool.CreateReply
	err := client.client.Call("Pool.Create", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Pool Reply", reply)

	return &reply, nil
}

// JoinPool - sign, countersign if necessary and submit a join
func (client *Client) JoinPool(data *JoinData) (*pool.JoinReply, error) {

	if err := client.checkNetwork(data.Payer, data.Authority); nil != err {
		return nil, err
	}

	arguments := &instruction.JoinPool{
		ProjectId: data.ProjectId,
		PoolId:    data.PoolId,
		Payer:     data.Payer.Account(),
	}
	if nil != data.Authority {
		arguments.Authority = data.Authority.Account()
	}
	arguments.Signature = instruction.Sign(arguments, data.Payer)

	if nil != data.Authority && !arguments.Authority.Equal(arguments.Payer) {
		arguments.Countersign(data.Authority)
	}

	client.printJson("Join Request", arguments)

	var reply pool.JoinReply
	err := client.client.Call("Pool.Join", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Join Reply", reply)

	return &reply, nil
}

// GetPool - read a pool by id
func (client *Client) GetPool(poolId uint64) (*pool.GetReply, error) {

	arguments := &pool.GetArguments{
		PoolId: poolId,
	}

	var reply pool.GetReply
	err := client.client.Call("Pool.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
