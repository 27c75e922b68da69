// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - maintain the connection between corgis and
// their owning accounts
//
// two structures are kept in step inside every transaction:
//
//   corgi id            -> owner account   (forward map)
//   owner digest ⧺ id   -> nil             (owner index)
//
// plus a per-owner bucket record counting the indexed items.  The
// bucket persists at zero so an account that once owned corgis can
// be listed as empty rather than unknown.
package ownership
