// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/corgid/account"
)

// Ownership - read access for the RPC handlers
type Ownership interface {
	ListFor(owner account.Account, start uint64, count int) ([]uint64, error)
	OwnerOf(id uint64) (account.Account, error)
}

type ownershipData struct{}

func (o ownershipData) ListFor(owner account.Account, start uint64, count int) ([]uint64, error) {
	return ListFor(owner, start, count)
}

func (o ownershipData) OwnerOf(id uint64) (account.Account, error) {
	return OwnerOf(nil, id)
}

var data ownershipData

// Get - return the Ownership interface
func Get() Ownership {
	return &data
}
