// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - delegation records allowing third party accounts
// to move or delete corgis on an owner's behalf
//
// the access pool holds one bucket record per granting owner:
//
//   owner digest              -> count of current delegates
//   owner digest ⧺ delegate   -> nil
//
// the bucket record persists at zero so that revocation against an
// owner who never delegated can be distinguished from revocation of
// an unknown delegate
package escrow
