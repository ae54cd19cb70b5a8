// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the ledger
//
// JSON RPC 1.0 over TLS, one listener per configured address.  The
// services are:
//
//	Project.Create  Project.Get
//	Pool.Create     Pool.Join     Pool.Get
//	Source.Create   Source.Get
//	Node.Info
//
// e.g. a join request:
//
//	{"id":1,"method":"Pool.Join","params":[{
//	  "projectId":"12","poolId":"4",
//	  "payer":"…","signature":"…"}]}
package rpc
