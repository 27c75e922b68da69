// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rarity - deterministic trait generation
//
// Derives a reproducible rarity tier and numeric attribute from the
// per-call entropy supplied by the host and the corgi id.  Identical
// (entropy, id) pairs always produce identical results.
package rarity
