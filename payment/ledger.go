// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/storage"
)

// Ledger - balance book backed by the balances pool
//
// credits issued inside a transaction only become visible when that
// transaction commits, so a failed sale leaves no stray funds
type Ledger struct {
	trx storage.Transaction
}

// NewLedger - ledger recording within an open transaction
func NewLedger(trx storage.Transaction) *Ledger {
	return &Ledger{trx: trx}
}

// Transfer - credit an amount to a recipient
func (ledger *Ledger) Transfer(recipient account.Account, amount Amount) error {
	if !recipient.IsValid() {
		return fault.ErrInvalidAccount
	}

	digest := recipient.Digest()

	balance := Amount{}
	packed := ledger.trx.Get(storage.Pool.Balances, digest[:])
	if nil != packed {
		if err := AmountFromBytes(&balance, packed); nil != err {
			logger.Panicf("ledger: corrupt balance record for: %s: %x", recipient, packed)
		}
	}

	balance = balance.Add(amount)
	ledger.trx.Put(storage.Pool.Balances, digest[:], balance.Bytes())
	return nil
}

// Balance - current committed balance of an account
//
// unknown accounts simply have a zero balance
func Balance(owner account.Account) (Amount, error) {
	if !owner.IsValid() {
		return Amount{}, fault.ErrInvalidAccount
	}

	digest := owner.Digest()

	packed := storage.Pool.Balances.Get(digest[:])
	if nil == packed {
		return Amount{}, nil
	}

	balance := Amount{}
	if err := AmountFromBytes(&balance, packed); nil != err {
		return Amount{}, err
	}
	return balance, nil
}
