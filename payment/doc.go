// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - marketplace value handling
//
// Amounts are unsigned 128 bit to match the hosting environment's
// balance type.  Actual movement of value is delegated to a
// Transferrer collaborator; the storage backed Ledger implementation
// credits recipients inside the caller's transaction so a failed
// call cannot move funds.
package payment
