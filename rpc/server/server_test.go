// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/instruction"
	"github.com/bitmark-inc/stockpiled/ledger"
	"github.com/bitmark-inc/stockpiled/rpc/fixtures"
	"github.com/bitmark-inc/stockpiled/rpc/listeners"
	"github.com/bitmark-inc/stockpiled/rpc/mocks"
	"github.com/bitmark-inc/stockpiled/rpc/node"
	"github.com/bitmark-inc/stockpiled/rpc/pool"
	"github.com/bitmark-inc/stockpiled/rpc/project"
	"github.com/bitmark-inc/stockpiled/rpc/server"
	"github.com/bitmark-inc/stockpiled/rpc/source"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// connect a JSON client to a fresh server backed by the mock ledger
func connect(t *testing.T, l ledger.Ledger) *rpc.Client {
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", "testing", &listeners.Connections{}, l)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

// following tests make sure each method is registered under its
// service name: every error comes from the mock behind that method

func TestProjectCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().CreateProject(gomock.Any()).Return(nil, fault.ErrRecordAlreadyExists).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply project.CreateReply
	err := client.Call("Project.Create", &instruction.CreateProject{ProjectId: 1}, &reply)
	assert.Equal(t, fault.ErrRecordAlreadyExists.Error(), err.Error(), "wrong error")
}

func TestProjectGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a, _ := address.ForProject(5)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Project(a).Return(nil, fault.ErrProjectNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply project.GetReply
	err := client.Call("Project.Get", &project.GetArguments{ProjectId: 5}, &reply)
	assert.Equal(t, fault.ErrProjectNotFound.Error(), err.Error(), "wrong error")
}

func TestPoolCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().CreatePool(gomock.Any()).Return(nil, fault.ErrInvalidWindow).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply pool.CreateReply
	err := client.Call("Pool.Create", &instruction.CreatePool{PoolId: 1}, &reply)
	assert.Equal(t, fault.ErrInvalidWindow.Error(), err.Error(), "wrong error")
}

func TestPoolJoin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().JoinPool(gomock.Any()).Return(nil, fault.ErrPoolEnded).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply pool.JoinReply
	err := client.Call("Pool.Join", &instruction.JoinPool{ProjectId: 1, PoolId: 2}, &reply)
	assert.Equal(t, fault.ErrPoolEnded.Error(), err.Error(), "wrong error")
}

func TestPoolGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a, _ := address.ForPool(2)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Pool(a).Return(nil, fault.ErrPoolNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply pool.GetReply
	err := client.Call("Pool.Get", &pool.GetArguments{PoolId: 2}, &reply)
	assert.Equal(t, fault.ErrPoolNotFound.Error(), err.Error(), "wrong error")
}

func TestSourceCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().CreateSource(gomock.Any()).Return(nil, fault.ErrSourceAmountTooSmall).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply source.CreateReply
	err := client.Call("Source.Create", &instruction.CreateSource{Name: "x"}, &reply)
	assert.Equal(t, fault.ErrSourceAmountTooSmall.Error(), err.Error(), "wrong error")
}

func TestSourceGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a, _ := address.ForPool(9)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Source(a).Return(nil, fault.ErrSourceNotFound).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply source.GetReply
	err := client.Call("Source.Get", &source.GetArguments{Address: &a}, &reply)
	assert.Equal(t, fault.ErrSourceNotFound.Error(), err.Error(), "wrong error")
}

func TestNodeInfo(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().IsTesting().Return(true).Times(1)
	l.EXPECT().Counts().Return(ledger.Counts{Projects: 3, Pools: 1}).Times(1)

	client := connect(t, l)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.True(t, reply.Testing, "wrong testing flag")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, 3, reply.Records.Projects, "wrong project count")
	assert.Equal(t, 1, reply.Records.Pools, "wrong pool count")
}
