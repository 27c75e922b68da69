// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/storage"
)

// IdKey - 8 byte big endian key for a corgi id
func IdKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// build the 40 byte owner index key
func indexKey(owner account.Digest, id uint64) []byte {
	key := make([]byte, account.DigestLength+8)
	copy(key, owner[:])
	binary.BigEndian.PutUint64(key[account.DigestLength:], id)
	return key
}

// Assign - record first ownership of a newly created corgi
//
// the id must not already have an owner
func Assign(trx storage.Transaction, id uint64, owner account.Account) {
	trx.Put(storage.Pool.CorgiOwner, IdKey(id), owner.Bytes())
	insertIndex(trx, owner, id)
}

// OwnerOf - current owner of a corgi
//
// a nil transaction reads committed data only
func OwnerOf(trx storage.Transaction, id uint64) (account.Account, error) {
	var packed []byte
	if nil == trx {
		packed = storage.Pool.CorgiOwner.Get(IdKey(id))
	} else {
		packed = trx.Get(storage.Pool.CorgiOwner, IdKey(id))
	}
	if nil == packed {
		return "", fault.ErrCorgiNotFound
	}
	return account.Account(packed), nil
}

// CurrentlyOwns - check the owner index contains a specific corgi
func CurrentlyOwns(trx storage.Transaction, owner account.Account, id uint64) bool {
	key := indexKey(owner.Digest(), id)
	if nil == trx {
		return storage.Pool.OwnerList.Has(key)
	}
	return trx.Has(storage.Pool.OwnerList, key)
}

// Transfer - owner gives a corgi away, optionally with a message
func Transfer(trx storage.Transaction, caller account.Account, recipient account.Account, id uint64, message string) error {
	owner, err := OwnerOf(trx, id)
	if nil != err {
		return err
	}
	if owner != caller {
		return fault.ErrNotCorgiOwner
	}
	return move(trx, id, owner, recipient, caller, message)
}

// TransferFrom - delegate moves a corgi on the owner's behalf
//
// the caller states who it believes the owner to be; a stale claim
// is rejected before any access check
func TransferFrom(trx storage.Transaction, caller account.Account, claimedOwner account.Account, recipient account.Account, id uint64, message string) error {
	owner, err := OwnerOf(trx, id)
	if nil != err {
		return err
	}
	if owner != claimedOwner {
		return fault.ErrOwnerMismatch
	}
	if !escrow.Check(trx, owner, caller) {
		return fault.ErrTransferNotAuthorised
	}
	return move(trx, id, owner, recipient, caller, message)
}

// Delete - remove a corgi entirely
//
// permitted to the owner or any of its delegates
func Delete(trx storage.Transaction, caller account.Account, id uint64) error {
	owner, err := OwnerOf(trx, id)
	if nil != err {
		return err
	}
	if !escrow.Check(trx, owner, caller) {
		return fault.ErrDeleteNotAuthorised
	}

	trx.Delete(storage.Pool.Corgis, IdKey(id))
	trx.Delete(storage.Pool.CorgiOwner, IdKey(id))
	removeIndex(trx, owner, id)
	return nil
}

// Move - reassign a corgi during a marketplace sale
//
// authorisation was already decided by the sale itself
func Move(trx storage.Transaction, id uint64, from account.Account, to account.Account, sender account.Account, message string) error {
	return move(trx, id, from, to, sender, message)
}

// the common half of every reassignment: fix both ownership
// structures and rewrite the record, dropping any marketplace
// listing
//
// the stored annotation only changes when a new message is supplied
func move(trx storage.Transaction, id uint64, from account.Account, to account.Account, sender account.Account, message string) error {
	if !to.IsValid() {
		return fault.ErrInvalidAccount
	}

	packed := trx.Get(storage.Pool.Corgis, IdKey(id))
	if nil == packed {
		return fault.ErrCorgiNotFound
	}
	record, err := corgi.Packed(packed).Unpack()
	if nil != err {
		return err
	}

	removeIndex(trx, from, id)
	trx.Put(storage.Pool.CorgiOwner, IdKey(id), to.Bytes())
	insertIndex(trx, to, id)

	if "" != message {
		record.Sender = sender
		record.Message = message
	}
	record.Listed = false
	record.ListingPrice = payment.Amount{}
	trx.Put(storage.Pool.Corgis, IdKey(id), record.Pack())

	return nil
}

func insertIndex(trx storage.Transaction, owner account.Account, id uint64) {
	digest := owner.Digest()
	trx.Put(storage.Pool.OwnerList, indexKey(digest, id), []byte{})
	count, _ := trx.GetN(storage.Pool.OwnerList, digest[:])
	trx.PutN(storage.Pool.OwnerList, digest[:], count+1)
}

func removeIndex(trx storage.Transaction, owner account.Account, id uint64) {
	digest := owner.Digest()
	trx.Delete(storage.Pool.OwnerList, indexKey(digest, id))
	count, _ := trx.GetN(storage.Pool.OwnerList, digest[:])
	if count > 0 {
		count -= 1
	}
	trx.PutN(storage.Pool.OwnerList, digest[:], count)
}
