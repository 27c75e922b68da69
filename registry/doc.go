// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - create and look up corgi records
//
// ids are allocated from a counter in the control pool and are never
// reused, so a deleted corgi leaves a permanent gap in the sequence
package registry
