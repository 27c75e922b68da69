// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/market"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "market-test")
	if nil != err {
		panic(err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "market-test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		panic(err)
	}

	_, err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		panic(err)
	}

	result := m.Run()

	storage.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(dir)

	os.Exit(result)
}

func beginTransaction(t *testing.T) storage.Transaction {
	trx, err := storage.NewTransaction()
	assert.NoError(t, err, "transaction access error")
	assert.NoError(t, trx.Begin(), "transaction begin error")
	return trx
}

var entropy = []byte{
	0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x11, 0x22,
	0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0x00,
	0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0,
}

func createCorgi(t *testing.T, owner account.Account, name string) uint64 {
	trx := beginTransaction(t)
	record, err := registry.Create(trx, owner, registry.CreationData{
		Name:            name,
		Quote:           "bark",
		Color:           "gold",
		BackgroundColor: "grey",
	}, entropy)
	assert.NoError(t, err, "create error")
	assert.NoError(t, trx.Commit(), "transaction commit error")
	return record.Id
}

func sellCorgi(t *testing.T, seller account.Account, id uint64, price uint64) {
	trx := beginTransaction(t)
	assert.NoError(t, market.Sell(trx, seller, id, payment.NewAmount(price)), "sell error")
	assert.NoError(t, trx.Commit(), "transaction commit error")
}

func TestSell(t *testing.T) {
	alice := account.Account("alice.sell")
	bob := account.Account("bob.sell")
	mallory := account.Account("mallory.sell")

	id := createCorgi(t, alice, "pretzel")

	trx := beginTransaction(t)
	err := market.Sell(trx, mallory, id, payment.NewAmount(100))
	assert.Equal(t, fault.ErrSaleNotAuthorised, err, "wrong error for stranger")

	err = market.Sell(trx, alice, id, payment.Amount{})
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero price accepted")

	err = market.Sell(trx, alice, 0xfffffff0, payment.NewAmount(100))
	assert.Equal(t, fault.ErrCorgiNotFound, err, "wrong error for unknown corgi")
	trx.Abort()

	sellCorgi(t, alice, id, 100)

	record, err := registry.Get(nil, id)
	assert.NoError(t, err, "get error")
	assert.True(t, record.Listed, "corgi not listed")
	assert.Equal(t, payment.NewAmount(100), record.ListingPrice, "wrong price")

	// relisting replaces the price
	sellCorgi(t, alice, id, 250)
	record, err = registry.Get(nil, id)
	assert.NoError(t, err, "get error")
	assert.Equal(t, payment.NewAmount(250), record.ListingPrice, "price not replaced")

	// a delegate may list too
	trx = beginTransaction(t)
	assert.NoError(t, escrow.Grant(trx, alice, bob), "grant error")
	assert.NoError(t, market.Sell(trx, bob, id, payment.NewAmount(300)), "delegate sell error")
	assert.NoError(t, trx.Commit(), "transaction commit error")
}

func TestBuy(t *testing.T) {
	alice := account.Account("alice.buy")
	bob := account.Account("bob.buy")

	id := createCorgi(t, alice, "nugget")
	sellCorgi(t, alice, id, 100)

	// underpayment is rejected
	trx := beginTransaction(t)
	ledger := payment.NewLedger(trx)
	err := market.Buy(trx, bob, id, payment.NewAmount(99), ledger)
	assert.Equal(t, fault.ErrInsufficientPayment, err, "underpayment accepted")
	trx.Abort()

	// overpayment passes straight through to the seller
	trx = beginTransaction(t)
	ledger = payment.NewLedger(trx)
	assert.NoError(t, market.Buy(trx, bob, id, payment.NewAmount(120), ledger), "buy error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	owner, err := ownership.OwnerOf(nil, id)
	assert.NoError(t, err, "owner lookup error")
	assert.Equal(t, bob, owner, "wrong owner after sale")

	record, err := registry.Get(nil, id)
	assert.NoError(t, err, "get error")
	assert.False(t, record.Listed, "listing survived sale")
	assert.True(t, record.ListingPrice.IsZero(), "price survived sale")
	assert.Equal(t, account.Account(""), record.Sender, "sale rewrote the sender")

	balance, err := payment.Balance(alice)
	assert.NoError(t, err, "balance error")
	assert.Equal(t, payment.NewAmount(120), balance, "seller not credited in full")

	// no longer listed, a second purchase fails
	trx = beginTransaction(t)
	defer trx.Abort()
	ledger = payment.NewLedger(trx)
	err = market.Buy(trx, alice, id, payment.NewAmount(120), ledger)
	assert.Equal(t, fault.ErrCorgiNotListed, err, "sold corgi still buyable")
}

func TestBuyMissing(t *testing.T) {
	trx := beginTransaction(t)
	defer trx.Abort()
	ledger := payment.NewLedger(trx)
	err := market.Buy(trx, account.Account("bob.missing"), 0xfffffff0, payment.NewAmount(1), ledger)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "wrong error")
}

func TestListings(t *testing.T) {
	alice := account.Account("alice.listings")

	first := createCorgi(t, alice, "l1")
	createCorgi(t, alice, "l2") // stays off the market
	third := createCorgi(t, alice, "l3")

	sellCorgi(t, alice, first, 10)
	sellCorgi(t, alice, third, 30)

	listed, err := market.Listings(first, 10)
	assert.NoError(t, err, "listings error")
	assert.Equal(t, 2, len(listed), "wrong listing count")
	assert.Equal(t, first, listed[0].Id, "wrong first listing")
	assert.Equal(t, third, listed[1].Id, "wrong second listing")

	_, err = market.Listings(0, -1)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")
}

func TestListingsWindow(t *testing.T) {
	alice := account.Account("alice.window")

	first := createCorgi(t, alice, "lw0")
	for i := 1; i < 11; i += 1 {
		createCorgi(t, alice, "lw"+strconv.Itoa(i))
	}
	beyond := createCorgi(t, alice, "lw11") // id is first+11, outside the window

	sellCorgi(t, alice, first, 10)
	sellCorgi(t, alice, beyond, 20)

	listed, err := market.Listings(first, 10)
	assert.NoError(t, err, "listings error")
	assert.Equal(t, 1, len(listed), "wrong listing count")
	assert.Equal(t, first, listed[0].Id, "wrong listing")
}
