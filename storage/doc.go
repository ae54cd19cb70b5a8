// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// maintain separate pools of records in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++       = concatenation of byte data
//  3. address  = derived record address, 32 byte SHA3-256
//  4. record   = fixed size packed record, first byte is the record tag
//
// Records:
//
//	P ++ address - project
//	               data: packed project
//	L ++ address - pool, rewritten in place by each join
//	               data: packed pool
//	S ++ address - source
//	               data: packed source
//
// Testing:
//
//	Z ++ key     - testing data
//
// All writes go through a Transaction which is committed as a single
// LevelDB batch, so a failed operation leaves nothing behind.
package storage
