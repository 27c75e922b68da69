// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/payment"
	rpccorgi "github.com/bitmark-inc/corgid/rpc/corgi"
	"github.com/bitmark-inc/corgid/rpc/fixtures"
	"github.com/bitmark-inc/corgid/storage"
)

// reader yielding an endless stream of fixture entropy
type entropyReader struct{}

func (entropyReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = fixtures.Entropy[i%len(fixtures.Entropy)]
	}
	return len(p), nil
}

func newHandler(fee payment.Amount, feeAccount account.Account) *rpccorgi.Corgi {
	c := rpccorgi.New(logger.New(fixtures.LogCategory), fee, feeAccount)
	c.Rand = entropyReader{}
	return c
}

func createCorgi(t *testing.T, c *rpccorgi.Corgi, owner account.Account, name string) uint64 {
	var reply rpccorgi.CreateReply
	err := c.Create(&rpccorgi.CreateArguments{
		Caller:          owner,
		Name:            name,
		Quote:           "woof",
		Color:           "brown",
		BackgroundColor: "blue",
	}, &reply)
	assert.Nil(t, err, "wrong Create")
	return reply.Corgi.Id
}

func TestCorgiCreateAndGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	c := newHandler(payment.Amount{}, "")

	id := createCorgi(t, c, fixtures.OwnerAccount, "rex")

	var reply rpccorgi.GetReply
	err := c.Get(&rpccorgi.GetArguments{Id: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "rex", reply.Corgi.Name, "wrong name")
	assert.Equal(t, fixtures.OwnerAccount, reply.Owner, "wrong owner")
	assert.True(t, reply.Corgi.Rarity.IsValid(), "invalid rarity")

	err = c.Get(&rpccorgi.GetArguments{Id: id + 1000}, &reply)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "wrong Get error")
}

func TestCorgiCreateFee(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	feeAccount := account.Account("node.operator")
	c := newHandler(payment.NewAmount(10), feeAccount)

	var reply rpccorgi.CreateReply
	err := c.Create(&rpccorgi.CreateArguments{
		Caller:  fixtures.OwnerAccount,
		Name:    "cheapskate",
		Payment: payment.NewAmount(9),
	}, &reply)
	assert.Equal(t, fault.ErrInvalidPayment, err, "underpaid create accepted")

	err = c.Create(&rpccorgi.CreateArguments{
		Caller:  fixtures.OwnerAccount,
		Name:    "paid",
		Payment: payment.NewAmount(15),
	}, &reply)
	assert.Nil(t, err, "wrong Create")

	balance, err := payment.Balance(feeAccount)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, payment.NewAmount(15), balance, "fee not credited")
}

func TestCorgiTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	c := newHandler(payment.Amount{}, "")

	id := createCorgi(t, c, fixtures.OwnerAccount, "biscuit")

	var reply rpccorgi.TransferReply
	err := c.Transfer(&rpccorgi.TransferArguments{
		Caller:    fixtures.ReceiverAccount,
		Recipient: fixtures.ReceiverAccount,
		Id:        id,
	}, &reply)
	assert.Equal(t, fault.ErrNotCorgiOwner, err, "stranger transfer accepted")

	err = c.Transfer(&rpccorgi.TransferArguments{
		Caller:    fixtures.OwnerAccount,
		Recipient: fixtures.ReceiverAccount,
		Id:        id,
		Message:   "enjoy",
	}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, "enjoy", reply.Corgi.Message, "wrong message")
	assert.Equal(t, fixtures.OwnerAccount, reply.Corgi.Sender, "wrong sender")

	var getReply rpccorgi.GetReply
	err = c.Get(&rpccorgi.GetArguments{Id: id}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, fixtures.ReceiverAccount, getReply.Owner, "wrong owner after transfer")
}

func TestCorgiTransferFrom(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	c := newHandler(payment.Amount{}, "")

	id := createCorgi(t, c, fixtures.OwnerAccount, "waffle")

	var reply rpccorgi.TransferReply
	args := &rpccorgi.TransferFromArguments{
		Caller:    fixtures.DelegateAccount,
		Owner:     fixtures.OwnerAccount,
		Recipient: fixtures.ReceiverAccount,
		Id:        id,
	}

	err := c.TransferFrom(args, &reply)
	assert.Equal(t, fault.ErrTransferNotAuthorised, err, "transfer without access accepted")

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "wrong NewTransaction")
	assert.Nil(t, trx.Begin(), "wrong Begin")
	assert.Nil(t, escrow.Grant(trx, fixtures.OwnerAccount, fixtures.DelegateAccount), "wrong Grant")
	assert.Nil(t, trx.Commit(), "wrong Commit")

	err = c.TransferFrom(args, &reply)
	assert.Nil(t, err, "wrong TransferFrom")

	var getReply rpccorgi.GetReply
	err = c.Get(&rpccorgi.GetArguments{Id: id}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, fixtures.ReceiverAccount, getReply.Owner, "wrong owner after transfer")
}

func TestCorgiDelete(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	c := newHandler(payment.Amount{}, "")

	id := createCorgi(t, c, fixtures.OwnerAccount, "ephemeral")

	var reply rpccorgi.DeleteReply
	err := c.Delete(&rpccorgi.DeleteArguments{
		Caller: fixtures.ReceiverAccount,
		Id:     id,
	}, &reply)
	assert.Equal(t, fault.ErrDeleteNotAuthorised, err, "stranger delete accepted")

	err = c.Delete(&rpccorgi.DeleteArguments{
		Caller: fixtures.OwnerAccount,
		Id:     id,
	}, &reply)
	assert.Nil(t, err, "wrong Delete")
	assert.True(t, reply.Deleted, "not deleted")

	var getReply rpccorgi.GetReply
	err = c.Get(&rpccorgi.GetArguments{Id: id}, &getReply)
	assert.Equal(t, fault.ErrCorgiNotFound, err, "deleted corgi still present")
}

// entropy reader must fill any requested length
func TestEntropyReader(t *testing.T) {
	r := entropyReader{}
	buffer := make([]byte, 64)
	n, err := r.Read(buffer)
	assert.Nil(t, err, "wrong Read")
	assert.Equal(t, 64, n, "short read")
	assert.True(t, bytes.Equal(buffer[:24], fixtures.Entropy), "wrong entropy prefix")
}
