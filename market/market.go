// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/storage"
)

// Sell - list a corgi at a price
//
// permitted to the owner or any of its delegates; listing an
// already listed corgi simply replaces the price
func Sell(trx storage.Transaction, caller account.Account, id uint64, price payment.Amount) error {
	if price.IsZero() {
		return fault.ErrInvalidAmount
	}

	owner, err := ownership.OwnerOf(trx, id)
	if nil != err {
		return err
	}
	if !escrow.Check(trx, owner, caller) {
		return fault.ErrSaleNotAuthorised
	}

	packed := trx.Get(storage.Pool.Corgis, ownership.IdKey(id))
	if nil == packed {
		return fault.ErrCorgiNotFound
	}
	record, err := corgi.Packed(packed).Unpack()
	if nil != err {
		return err
	}

	record.Listed = true
	record.ListingPrice = price
	trx.Put(storage.Pool.Corgis, ownership.IdKey(id), record.Pack())
	return nil
}

// Buy - purchase a listed corgi
//
// the full paid amount goes to the seller, including any amount
// above the listing price.  The reassignment and the payment land
// in the same transaction.
func Buy(trx storage.Transaction, buyer account.Account, id uint64, paid payment.Amount, transferrer payment.Transferrer) error {
	if !buyer.IsValid() {
		return fault.ErrInvalidAccount
	}

	packed := trx.Get(storage.Pool.Corgis, ownership.IdKey(id))
	if nil == packed {
		return fault.ErrCorgiNotFound
	}
	record, err := corgi.Packed(packed).Unpack()
	if nil != err {
		return err
	}
	if !record.Listed {
		return fault.ErrCorgiNotListed
	}
	if paid.Cmp(record.ListingPrice) < 0 {
		return fault.ErrInsufficientPayment
	}

	seller, err := ownership.OwnerOf(trx, id)
	if nil != err {
		return err
	}

	if err := ownership.Move(trx, id, seller, buyer, seller, ""); nil != err {
		return err
	}

	return transferrer.Transfer(seller, paid)
}

// Listings - the listed corgis of the id window [start, start+count)
//
// the window is clamped to the allocated id range; deleted and
// unlisted ids inside it are skipped
func Listings(start uint64, count int) ([]*corgi.Corgi, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	end := start + uint64(count)
	if next := registry.NextId(); end > next {
		end = next
	}

	cursor := storage.Pool.Corgis.NewFetchCursor().Seek(ownership.IdKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	listed := make([]*corgi.Corgi, 0, len(elements))
	for _, element := range elements {
		if binary.BigEndian.Uint64(element.Key) >= end {
			break
		}
		record, err := corgi.Packed(element.Value).Unpack()
		if nil != err {
			return nil, err
		}
		if !record.Listed {
			continue
		}
		listed = append(listed, record)
	}

	return listed, nil
}
