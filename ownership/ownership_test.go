// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "ownership-test")
	if nil != err {
		panic(err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "ownership-test.log",
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
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87,
	0x78, 0x69, 0x5a, 0x4b, 0x3c, 0x2d, 0x1e, 0x0f,
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
}

func createCorgi(t *testing.T, owner account.Account, name string) uint64 {
	trx := beginTransaction(t)
	record, err := registry.Create(trx, owner, registry.CreationData{
		Name:            name,
		Quote:           "much wow",
		Color:           "tan",
		BackgroundColor: "white",
	}, entropy)
	assert.NoError(t, err, "create error")
	assert.NoError(t, trx.Commit(), "transaction commit error")
	return record.Id
}

func grantAccess(t *testing.T, owner account.Account, delegate account.Account) {
	trx := beginTransaction(t)
	assert.NoError(t, escrow.Grant(trx, owner, delegate), "grant error")
	assert.NoError(t, trx.Commit(), "transaction commit error")
}

func getCorgi(t *testing.T, id uint64) *corgi.Corgi {
	record, err := registry.Get(nil, id)
	assert.NoError(t, err, "get error")
	return record
}

func TestTransfer(t *testing.T) {
	alice := account.Account("alice.transfer")
	bob := account.Account("bob.transfer")

	id := createCorgi(t, alice, "biscuit")

	trx := beginTransaction(t)
	err := ownership.Transfer(trx, bob, alice, id, "")
	assert.Equal(t, fault.ErrNotCorgiOwner, err, "wrong error for non owner")
	trx.Abort()

	trx = beginTransaction(t)
	assert.NoError(t, ownership.Transfer(trx, alice, bob, id, "enjoy"), "transfer error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	owner, err := ownership.OwnerOf(nil, id)
	assert.NoError(t, err, "owner lookup error")
	assert.Equal(t, bob, owner, "wrong owner after transfer")

	assert.True(t, ownership.CurrentlyOwns(nil, bob, id), "index missing new owner")
	assert.False(t, ownership.CurrentlyOwns(nil, alice, id), "index kept old owner")

	record := getCorgi(t, id)
	assert.Equal(t, alice, record.Sender, "wrong sender")
	assert.Equal(t, "enjoy", record.Message, "wrong message")
}

func TestTransferKeepsMessage(t *testing.T) {
	alice := account.Account("alice.keep")
	bob := account.Account("bob.keep")
	carol := account.Account("carol.keep")

	id := createCorgi(t, alice, "postcard")

	trx := beginTransaction(t)
	assert.NoError(t, ownership.Transfer(trx, alice, bob, id, "keep me"), "transfer error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	// a plain transfer must not disturb the stored annotation
	trx = beginTransaction(t)
	assert.NoError(t, ownership.Transfer(trx, bob, carol, id, ""), "transfer error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	record := getCorgi(t, id)
	assert.Equal(t, alice, record.Sender, "wrong sender")
	assert.Equal(t, "keep me", record.Message, "plain transfer wiped the message")
}

func TestTransferMissingCorgi(t *testing.T) {
	trx := beginTransaction(t)
	defer trx.Abort()
	err := ownership.Transfer(trx, account.Account("alice.missing"), account.Account("bob.missing"), 0xfffffff0, "")
	assert.Equal(t, fault.ErrCorgiNotFound, err, "wrong error")
}

func TestTransferInvalidRecipient(t *testing.T) {
	alice := account.Account("alice.badto")
	id := createCorgi(t, alice, "scraps")

	trx := beginTransaction(t)
	defer trx.Abort()
	err := ownership.Transfer(trx, alice, account.Account("BAD RECIPIENT"), id, "")
	assert.Equal(t, fault.ErrInvalidAccount, err, "wrong error")
}

func TestTransferFrom(t *testing.T) {
	alice := account.Account("alice.from")
	bob := account.Account("bob.from")
	carol := account.Account("carol.from")

	id := createCorgi(t, alice, "waffle")

	// no delegation yet
	trx := beginTransaction(t)
	err := ownership.TransferFrom(trx, bob, alice, carol, id, "")
	assert.Equal(t, fault.ErrTransferNotAuthorised, err, "wrong error without access")
	trx.Abort()

	grantAccess(t, alice, bob)

	// stale owner claim fails before the access check
	trx = beginTransaction(t)
	err = ownership.TransferFrom(trx, bob, carol, bob, id, "")
	assert.Equal(t, fault.ErrOwnerMismatch, err, "wrong error for stale claim")
	trx.Abort()

	trx = beginTransaction(t)
	assert.NoError(t, ownership.TransferFrom(trx, bob, alice, carol, id, "for you"), "transfer error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	owner, err := ownership.OwnerOf(nil, id)
	assert.NoError(t, err, "owner lookup error")
	assert.Equal(t, carol, owner, "wrong owner after transfer")

	record := getCorgi(t, id)
	assert.Equal(t, bob, record.Sender, "wrong sender")
	assert.Equal(t, "for you", record.Message, "wrong message")

	// the delegation was for alice, not the new owner
	trx = beginTransaction(t)
	err = ownership.TransferFrom(trx, bob, carol, alice, id, "")
	assert.Equal(t, fault.ErrTransferNotAuthorised, err, "delegation followed the corgi")
	trx.Abort()
}

func TestDelete(t *testing.T) {
	alice := account.Account("alice.delete")
	bob := account.Account("bob.delete")
	mallory := account.Account("mallory.delete")

	first := createCorgi(t, alice, "one")
	second := createCorgi(t, alice, "two")

	trx := beginTransaction(t)
	err := ownership.Delete(trx, mallory, first)
	assert.Equal(t, fault.ErrDeleteNotAuthorised, err, "wrong error for stranger")
	trx.Abort()

	// owner deletes directly
	trx = beginTransaction(t)
	assert.NoError(t, ownership.Delete(trx, alice, first), "delete error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	_, err = ownership.OwnerOf(nil, first)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "deleted corgi still owned")
	_, err = registry.Get(nil, first)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "deleted corgi still stored")

	// delegate deletes on the owner's behalf
	grantAccess(t, alice, bob)
	trx = beginTransaction(t)
	assert.NoError(t, ownership.Delete(trx, bob, second), "delegate delete error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	// all corgis gone, yet the owner is still known
	ids, err := ownership.ListFor(alice, 0, 10)
	assert.NoError(t, err, "list error")
	assert.Equal(t, 0, len(ids), "deleted corgis still listed")

	trx = beginTransaction(t)
	defer trx.Abort()
	err = ownership.Delete(trx, alice, first)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "wrong error for repeat delete")
}

func TestListFor(t *testing.T) {
	alice := account.Account("alice.page")

	first := createCorgi(t, alice, "p1")
	second := createCorgi(t, alice, "p2")
	third := createCorgi(t, alice, "p3")

	ids, err := ownership.ListFor(alice, 0, 10)
	assert.NoError(t, err, "list error")
	assert.Equal(t, []uint64{first, second, third}, ids, "wrong id list")

	// paging
	ids, err = ownership.ListFor(alice, 0, 2)
	assert.NoError(t, err, "list error")
	assert.Equal(t, []uint64{first, second}, ids, "wrong first page")

	ids, err = ownership.ListFor(alice, ids[len(ids)-1]+1, 2)
	assert.NoError(t, err, "list error")
	assert.Equal(t, []uint64{third}, ids, "wrong second page")

	_, err = ownership.ListFor(account.Account("nobody.page"), 0, 10)
	assert.Equal(t, fault.ErrOwnerNotFound, err, "wrong error for unknown owner")

	_, err = ownership.ListFor(alice, 0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error for zero count")
}

func TestTransferDropsListing(t *testing.T) {
	alice := account.Account("alice.listing")
	bob := account.Account("bob.listing")

	id := createCorgi(t, alice, "sale")

	// list it by rewriting the record the way the market does
	trx := beginTransaction(t)
	packed := trx.Get(storage.Pool.Corgis, ownership.IdKey(id))
	record, err := corgi.Packed(packed).Unpack()
	assert.NoError(t, err, "unpack error")
	record.Listed = true
	record.ListingPrice.Lo = 500
	trx.Put(storage.Pool.Corgis, ownership.IdKey(id), record.Pack())
	assert.NoError(t, trx.Commit(), "transaction commit error")

	trx = beginTransaction(t)
	assert.NoError(t, ownership.Transfer(trx, alice, bob, id, ""), "transfer error")
	assert.NoError(t, trx.Commit(), "transaction commit error")

	record = getCorgi(t, id)
	assert.False(t, record.Listed, "listing survived transfer")
	assert.True(t, record.ListingPrice.IsZero(), "price survived transfer")
}
