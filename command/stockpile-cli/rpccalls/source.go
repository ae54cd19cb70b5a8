// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/rpc/source"
)

// SourceData - fields of a new source
type SourceData struct {
	Name   string
	PoolId uint64
	Amount uint64
	Payer  *account.PrivateKey
}

// CreateSource - sign and submit a new source
func (client *Client) CreateSource(data *SourceData) (*source.CreateReply, error) {

	if err := client.checkNetwork(data.Payer); nil != err {
		return nil, err
	}

	arguments := &instruction.CreateSource{
		Name:   data.Name,
		PoolId: data.PoolId,
		Amount: data.Amount,
		Payer:  data.Payer.Account(),
	}
	arguments.Signature = instruction.Sign(arguments, data.Payer)

	client.printJson("Source Request", arguments)

	var reply source.CreateReply
	err := client.client.Call("Source.Create", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Source Reply", reply)

	return &reply, nil
}

// GetSource - read a source by its address
func (client *Client) GetSource(a address.Address) (*source.GetReply, error) {

	arguments := &source.GetArguments{
		Address: &a,
	}

	var reply source.GetReply
	err := client.client.Call("Source.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
