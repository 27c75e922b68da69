// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package corgi - the canonical corgi record
//
// Records are stored packed in the corgi pool.  The pack format is
// versioned: generation 1 predates the marketplace and carries no
// listing fields; generation 2 is current.  Unpack accepts both so a
// database written by the previous generation can be migrated.
package corgi
