// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persistent ledger history
//
//  ***** Data Structure *****
//
//  Key                       Value
//  'L' + peer id bytes       ledgerpb.Ledger
//  'S'                       ledgerpb.Counters
//
// big integers are stored as unsigned big-endian bytes, the provide
// buffer length is a gauge and is not stored
package storage
