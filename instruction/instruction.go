// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed requests that mutate the ledger
//
// Each instruction has a canonical byte message which the payer signs.
// A join authorised by a pool admin other than the payer also carries
// the admin's countersignature over the message followed by the payer
// signature.
package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/stockpiled/account"
	"github.com/bitmark-inc/stockpiled/fault"
	"github.com/bitmark-inc/stockpiled/record"
)

// OpType - leading byte of a message
type OpType uint8

// enumerate the possible instructions
const (
	NullOp = OpType(iota)

	CreateProjectOp = OpType(iota)
	CreatePoolOp    = OpType(iota)
	CreateSourceOp  = OpType(iota)
	JoinPoolOp      = OpType(iota)

	// this item must be last
	InvalidOp = OpType(iota)
)

// prefix to every message so signatures cannot be reused elsewhere
const messagePrefix = "stockpile"

// Instruction - generic signed request
type Instruction interface {
	Message() []byte
	Verify(testnet bool) error
}

// CreateProject - request a new project
type CreateProject struct {
	ProjectId   uint64            `json:"projectId,string"`
	Name        string            `json:"name"`
	Admins      record.AdminSet   `json:"admins"`
	Beneficiary *account.Account  `json:"beneficiary"`
	Goal        uint64            `json:"goal,string"`
	Payer       *account.Account  `json:"payer"`
	Signature   account.Signature `json:"signature"`
}

// CreatePool - request a new pool
type CreatePool struct {
	PoolId    uint64            `json:"poolId,string"`
	Name      string            `json:"name"`
	Start     uint64            `json:"start"`
	End       uint64            `json:"end"`
	Admins    record.AdminSet   `json:"admins"`
	Access    record.Access     `json:"access"`
	Payer     *account.Account  `json:"payer"`
	Signature account.Signature `json:"signature"`
}

// CreateSource - request a new source
type CreateSource struct {
	Name      string            `json:"name"`
	PoolId    uint64            `json:"poolId,string"`
	Amount    uint64            `json:"amount,string"`
	Payer     *account.Account  `json:"payer"`
	Signature account.Signature `json:"signature"`
}

// JoinPool - request a project be added to a pool
//
// Authority is only needed for a manual pool
type JoinPool struct {
	ProjectId        uint64            `json:"projectId,string"`
	PoolId           uint64            `json:"poolId,string"`
	Authority        *account.Account  `json:"authority,omitempty"`
	Payer            *account.Account  `json:"payer"`
	Signature        account.Signature `json:"signature"`
	Countersignature account.Signature `json:"countersignature,omitempty"`
}

// Record - the project this instruction creates
func (c *CreateProject) Record() *record.Project {
	return &record.Project{
		ProjectId:   c.ProjectId,
		Name:        c.Name,
		Admins:      c.Admins,
		Beneficiary: c.Beneficiary,
		Goal:        c.Goal,
	}
}

// Record - the pool this instruction creates
func (c *CreatePool) Record() *record.Pool {
	return &record.Pool{
		PoolId: c.PoolId,
		Name:   c.Name,
		Start:  c.Start,
		End:    c.End,
		Admins: c.Admins,
		Access: c.Access,
	}
}

// Record - the source this instruction creates
func (c *CreateSource) Record() *record.Source {
	return &record.Source{
		Name:   c.Name,
		PoolId: c.PoolId,
		Amount: c.Amount,
		Payer:  c.Payer,
	}
}

// Message - bytes signed by the payer
func (c *CreateProject) Message() []byte {
	message := start(CreateProjectOp)
	message = appendUint64(message, c.ProjectId)
	message = appendString(message, c.Name)
	message = appendAdmins(message, c.Admins)
	message = appendAccount(message, c.Beneficiary)
	message = appendUint64(message, c.Goal)
	return appendAccount(message, c.Payer)
}

// Message - bytes signed by the payer
func (c *CreatePool) Message() []byte {
	message := start(CreatePoolOp)
	message = appendUint64(message, c.PoolId)
	message = appendString(message, c.Name)
	message = appendUint64(message, c.Start)
	message = appendUint64(message, c.End)
	message = appendAdmins(message, c.Admins)
	message = appendUint64(message, uint64(c.Access))
	return appendAccount(message, c.Payer)
}

// Message - bytes signed by the payer
func (c *CreateSource) Message() []byte {
	message := start(CreateSourceOp)
	message = appendString(message, c.Name)
	message = appendUint64(message, c.PoolId)
	message = appendUint64(message, c.Amount)
	return appendAccount(message, c.Payer)
}

// Message - bytes signed by the payer
func (j *JoinPool) Message() []byte {
	message := start(JoinPoolOp)
	message = appendUint64(message, j.ProjectId)
	message = appendUint64(message, j.PoolId)
	message = appendAccount(message, j.Authority)
	return appendAccount(message, j.Payer)
}

// CountersignedMessage - bytes signed by the authority
func (j *JoinPool) CountersignedMessage() []byte {
	return appendBytes(j.Message(), j.Signature)
}

// Verify - check network and payer signature
func (c *CreateProject) Verify(testnet bool) error {
	err := checkNetwork(testnet, c.Payer, c.Beneficiary)
	if nil == err {
		err = checkNetwork(testnet, c.Admins...)
	}
	if nil != err {
		return err
	}
	return checkPayer(c.Payer, c.Message(), c.Signature)
}

// Verify - check network and payer signature
func (c *CreatePool) Verify(testnet bool) error {
	err := checkNetwork(testnet, c.Payer)
	if nil == err {
		err = checkNetwork(testnet, c.Admins...)
	}
	if nil != err {
		return err
	}
	return checkPayer(c.Payer, c.Message(), c.Signature)
}

// Verify - check network and payer signature
func (c *CreateSource) Verify(testnet bool) error {
	err := checkNetwork(testnet, c.Payer)
	if nil != err {
		return err
	}
	return checkPayer(c.Payer, c.Message(), c.Signature)
}

// Verify - check network, payer signature and, when the authority is
// not the payer, the authority countersignature
func (j *JoinPool) Verify(testnet bool) error {
	err := checkNetwork(testnet, j.Payer, j.Authority)
	if nil != err {
		return err
	}
	err = checkPayer(j.Payer, j.Message(), j.Signature)
	if nil != err {
		return err
	}

	if nil == j.Authority {
		if 0 != len(j.Countersignature) {
			return fault.ErrUnexpectedCountersignature
		}
		return nil
	}

	if 0 == len(j.Countersignature) {
		if j.Authority.Equal(j.Payer) {
			return nil
		}
		return fault.ErrMissingCountersignature
	}
	return j.Authority.CheckSignature(j.CountersignedMessage(), j.Countersignature)
}

// Sign - the payer signature over the message of any instruction
func Sign(i Instruction, privateKey *account.PrivateKey) account.Signature {
	return privateKey.Sign(i.Message())
}

// Countersign - set the authority countersignature on a join that the
// payer has already signed
func (j *JoinPool) Countersign(privateKey *account.PrivateKey) {
	j.Countersignature = privateKey.Sign(j.CountersignedMessage())
}

func checkPayer(payer *account.Account, message []byte, signature account.Signature) error {
	if nil == payer {
		return fault.ErrMissingPayer
	}
	return payer.CheckSignature(message, signature)
}

// nil accounts are left for schema validation
func checkNetwork(testnet bool, accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil != a && a.IsTesting() != testnet {
			return fault.ErrWrongNetworkForPublicKey
		}
	}
	return nil
}

func start(op OpType) []byte {
	return append([]byte(messagePrefix), byte(op))
}

// append a single string
//
// the field is prefixed by Varint64(length)
func appendString(buffer []byte, s string) []byte {
	return appendBytes(buffer, []byte(s))
}

// append an account, absent accounts have zero length
func appendAccount(buffer []byte, a *account.Account) []byte {
	if nil == a {
		return appendUint64(buffer, 0)
	}
	return appendBytes(buffer, a.Bytes())
}

func appendAdmins(buffer []byte, admins record.AdminSet) []byte {
	buffer = appendUint64(buffer, uint64(len(admins)))
	for _, admin := range admins {
		buffer = appendAccount(buffer, admin)
	}
	return buffer
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = appendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer []byte, value uint64) []byte {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, value)
	return append(buffer, b[:n]...)
}
