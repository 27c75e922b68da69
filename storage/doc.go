// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// Every record lives in a pool, distinguished by a one byte prefix
// on its key inside a single LevelDB database:
//
//   Corgis      C   id               -> packed corgi record
//   CorgiOwner  W   id               -> owner account        (forward map)
//   OwnerList   L   digest           -> item count           (owner bucket)
//               L   digest ⧺ id      -> nil                  (owner index)
//   Access      E   digest           -> delegate count       (grant bucket)
//               E   digest ⧺ digest  -> nil                  (delegation)
//   Balances    B   digest           -> packed amount
//   Control     N   name             -> counter
//   TestData    Z   -- only for tests
//
// All mutation goes through a single Transaction backed by a LevelDB
// batch with a write-through cache, so a call either commits every
// one of its writes or none of them.  Transactions are exclusive:
// Begin serialises callers, reproducing the hosting model of one
// call at a time.
package storage
