// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"bytes"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/storage"
)

// number of delegate records to read per batch when listing
const fetchBatchSize = 20

// build the 64 byte delegation key
func delegationKey(owner account.Digest, delegate account.Digest) []byte {
	key := make([]byte, 0, 2*account.DigestLength)
	key = append(key, owner[:]...)
	return append(key, delegate[:]...)
}

// Grant - allow a delegate to act on the owner's corgis
//
// granting twice is not an error, the delegation simply stays
func Grant(trx storage.Transaction, owner account.Account, delegate account.Account) error {
	if !owner.IsValid() || !delegate.IsValid() {
		return fault.ErrInvalidAccount
	}

	ownerDigest := owner.Digest()
	key := delegationKey(ownerDigest, delegate.Digest())

	if trx.Has(storage.Pool.Access, key) {
		return nil
	}

	count, _ := trx.GetN(storage.Pool.Access, ownerDigest[:])
	trx.Put(storage.Pool.Access, key, []byte{})
	trx.PutN(storage.Pool.Access, ownerDigest[:], count+1)
	return nil
}

// Revoke - withdraw a previously granted delegation
//
// an owner who never granted anything gets ErrNoDelegation; an owner
// with a grant bucket but no record for this delegate gets
// ErrDelegateNotFound
func Revoke(trx storage.Transaction, owner account.Account, delegate account.Account) error {
	if !owner.IsValid() || !delegate.IsValid() {
		return fault.ErrInvalidAccount
	}

	ownerDigest := owner.Digest()

	count, ok := trx.GetN(storage.Pool.Access, ownerDigest[:])
	if !ok {
		return fault.ErrNoDelegation
	}

	key := delegationKey(ownerDigest, delegate.Digest())
	if !trx.Has(storage.Pool.Access, key) {
		return fault.ErrDelegateNotFound
	}

	trx.Delete(storage.Pool.Access, key)
	trx.PutN(storage.Pool.Access, ownerDigest[:], count-1)
	return nil
}

// Check - determine whether caller may act on owner's corgis
//
// an account always has access to itself; otherwise a delegation
// record must exist.  A nil transaction checks committed data only.
func Check(trx storage.Transaction, owner account.Account, caller account.Account) bool {
	if owner == caller {
		return true
	}
	if !owner.IsValid() || !caller.IsValid() {
		return false
	}

	key := delegationKey(owner.Digest(), caller.Digest())
	if nil == trx {
		return storage.Pool.Access.Has(key)
	}
	return trx.Has(storage.Pool.Access, key)
}

// ListFor - all current delegates of an owner
func ListFor(owner account.Account) ([]account.Digest, error) {
	if !owner.IsValid() {
		return nil, fault.ErrInvalidAccount
	}

	ownerDigest := owner.Digest()
	cursor := storage.Pool.Access.NewFetchCursor().Seek(ownerDigest[:])

	delegates := make([]account.Digest, 0, fetchBatchSize)

fetching:
	for {
		elements, err := cursor.Fetch(fetchBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break fetching
		}
		for _, element := range elements {
			if !bytes.HasPrefix(element.Key, ownerDigest[:]) {
				break fetching
			}
			if 2*account.DigestLength != len(element.Key) {
				continue // the grant bucket itself
			}
			delegate := account.Digest{}
			if err := account.DigestFromBytes(&delegate, element.Key[account.DigestLength:]); nil != err {
				return nil, err
			}
			delegates = append(delegates, delegate)
		}
	}

	return delegates, nil
}
