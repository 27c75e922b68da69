// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi

import (
	"crypto/rand"
	"io"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
	"github.com/bitmark-inc/corgid/storage"
)

// Corgi - type for the RPC
type Corgi struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Rand        io.Reader
	CreationFee payment.Amount
	FeeAccount  account.Account
}

const (
	rateLimitCorgi = 200
	rateBurstCorgi = 100

	// bytes of call environment entropy fed to rarity generation
	entropyLength = 24
)

func New(log *logger.L, creationFee payment.Amount, feeAccount account.Account) *Corgi {
	return &Corgi{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitCorgi, rateBurstCorgi),
		Rand:        rand.Reader,
		CreationFee: creationFee,
		FeeAccount:  feeAccount,
	}
}

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller          account.Account `json:"caller"`
	Name            string          `json:"name"`
	Quote           string          `json:"quote"`
	Color           string          `json:"color"`
	BackgroundColor string          `json:"backgroundColor"`
	Payment         payment.Amount  `json:"payment"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	Corgi corgi.Corgi `json:"corgi"`
}

// Create - mint a new corgi for the caller
func (c *Corgi) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log
	log.Infof("Corgi.Create: %+v", arguments)

	if !c.CreationFee.IsZero() && arguments.Payment.Cmp(c.CreationFee) < 0 {
		return fault.ErrInvalidPayment
	}

	entropy := make([]byte, entropyLength)
	if _, err := io.ReadFull(c.Rand, entropy); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	record, err := registry.Create(trx, arguments.Caller, registry.CreationData{
		Name:            arguments.Name,
		Quote:           arguments.Quote,
		Color:           arguments.Color,
		BackgroundColor: arguments.BackgroundColor,
	}, entropy)
	if nil != err {
		trx.Abort()
		return err
	}

	// the whole attached payment goes to the fee account
	if !c.CreationFee.IsZero() && c.FeeAccount.IsValid() {
		if err := payment.NewLedger(trx).Transfer(c.FeeAccount, arguments.Payment); nil != err {
			trx.Abort()
			return err
		}
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Corgi = *record
	return nil
}

// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - result of get RPC
type GetReply struct {
	Corgi corgi.Corgi     `json:"corgi"`
	Owner account.Account `json:"owner"`
}

// Get - fetch one corgi with its current owner
func (c *Corgi) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Corgi.Get: %+v", arguments)

	record, err := registry.Get(nil, arguments.Id)
	if nil != err {
		return err
	}
	owner, err := ownership.OwnerOf(nil, arguments.Id)
	if nil != err {
		return err
	}

	reply.Corgi = *record
	reply.Owner = owner
	return nil
}

// ---

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller    account.Account `json:"caller"`
	Recipient account.Account `json:"recipient"`
	Id        uint64          `json:"id,string"`
	Message   string          `json:"message"`
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	Corgi corgi.Corgi `json:"corgi"`
}

// Transfer - owner gives a corgi to a recipient
func (c *Corgi) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Corgi.Transfer: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	err = ownership.Transfer(trx, arguments.Caller, arguments.Recipient, arguments.Id, arguments.Message)
	if nil != err {
		trx.Abort()
		return err
	}

	record, err := registry.Get(trx, arguments.Id)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Corgi = *record
	return nil
}

// ---

// TransferFromArguments - arguments for RPC
type TransferFromArguments struct {
	Caller    account.Account `json:"caller"`
	Owner     account.Account `json:"owner"`
	Recipient account.Account `json:"recipient"`
	Id        uint64          `json:"id,string"`
	Message   string          `json:"message"`
}

// TransferFrom - delegate moves a corgi from its claimed owner
func (c *Corgi) TransferFrom(arguments *TransferFromArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Corgi.TransferFrom: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	err = ownership.TransferFrom(trx, arguments.Caller, arguments.Owner, arguments.Recipient, arguments.Id, arguments.Message)
	if nil != err {
		trx.Abort()
		return err
	}

	record, err := registry.Get(trx, arguments.Id)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Corgi = *record
	return nil
}

// ---

// DeleteArguments - arguments for RPC
type DeleteArguments struct {
	Caller account.Account `json:"caller"`
	Id     uint64          `json:"id,string"`
}

// DeleteReply - result of delete RPC
type DeleteReply struct {
	Deleted bool `json:"deleted"`
}

// Delete - remove a corgi entirely
func (c *Corgi) Delete(arguments *DeleteArguments, reply *DeleteReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Corgi.Delete: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	if err := ownership.Delete(trx, arguments.Caller, arguments.Id); nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Deleted = true
	return nil
}
