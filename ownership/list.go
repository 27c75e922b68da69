// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/storage"
)

// ListFor - ids of corgis belonging to an account, in id order
//
// start is the first id to consider, allowing the caller to page
// through a large collection.  An account with no bucket record has
// never owned anything and gets ErrOwnerNotFound; an account that
// lost all its corgis simply gets an empty page.
func ListFor(owner account.Account, start uint64, count int) ([]uint64, error) {
	if !owner.IsValid() {
		return nil, fault.ErrInvalidAccount
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	digest := owner.Digest()
	if _, ok := storage.Pool.OwnerList.GetN(digest[:]); !ok {
		return nil, fault.ErrOwnerNotFound
	}

	cursor := storage.Pool.OwnerList.NewFetchCursor().Seek(indexKey(digest, start))

	ids := make([]uint64, 0, count)

fetching:
	for len(ids) < count {
		elements, err := cursor.Fetch(count - len(ids))
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break fetching
		}
		for _, element := range elements {
			if !bytes.HasPrefix(element.Key, digest[:]) {
				break fetching
			}
			if account.DigestLength+8 != len(element.Key) {
				continue
			}
			ids = append(ids, binary.BigEndian.Uint64(element.Key[account.DigestLength:]))
		}
	}

	return ids, nil
}
