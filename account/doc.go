// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers and their digest keys
//
// Account identifiers are opaque strings supplied by the hosting
// environment.  All index structures are keyed by the SHA3-256
// digest of the identifier, never by the raw identifier; the digest
// is one-way so an identifier cannot be recovered from a key.
package account
