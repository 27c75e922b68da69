// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/market"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
	"github.com/bitmark-inc/corgid/storage"
)

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	// limit for count
	MaximumListingsCount = 100

	rateLimitMarket = 200
	rateBurstMarket = 100
)

func New(log *logger.L) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
	}
}

// SellArguments - arguments for RPC
type SellArguments struct {
	Caller account.Account `json:"caller"`
	Id     uint64          `json:"id,string"`
	Price  payment.Amount  `json:"price"`
}

// SellReply - result of sell RPC
type SellReply struct {
	Corgi corgi.Corgi `json:"corgi"`
}

// Sell - list a corgi at a price
func (m *Market) Sell(arguments *SellArguments, reply *SellReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.Sell: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	if err := market.Sell(trx, arguments.Caller, arguments.Id, arguments.Price); nil != err {
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

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Caller  account.Account `json:"caller"`
	Id      uint64          `json:"id,string"`
	Payment payment.Amount  `json:"payment"`
}

// BuyReply - result of buy RPC
type BuyReply struct {
	Corgi corgi.Corgi `json:"corgi"`
}

// Buy - purchase a listed corgi; the payment goes to the seller
func (m *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.Buy: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	ledger := payment.NewLedger(trx)
	if err := market.Buy(trx, arguments.Caller, arguments.Id, arguments.Payment, ledger); nil != err {
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

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner account.Account `json:"owner"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Owner   account.Account `json:"owner"`
	Balance payment.Amount  `json:"balance"`
}

// Balance - accumulated sale proceeds of an account
func (m *Market) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.Balance: %+v", arguments)

	balance, err := payment.Balance(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Balance = balance
	return nil
}

// ---

// ListingsArguments - arguments for RPC
type ListingsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListingsReply - result of listings RPC
type ListingsReply struct {
	Corgis []*corgi.Corgi `json:"corgis"`
	Next   uint64         `json:"next,string"`
}

// Listings - a page of corgis currently offered for sale
func (m *Market) Listings(arguments *ListingsArguments, reply *ListingsReply) error {
	if err := ratelimit.LimitN(m.Limiter, arguments.Count, MaximumListingsCount); nil != err {
		return err
	}

	m.Log.Infof("Market.Listings: %+v", arguments)

	listed, err := market.Listings(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Corgis = listed
	if n := len(listed); n > 0 {
		reply.Next = listed[n-1].Id + 1
	} else {
		reply.Next = arguments.Start
	}
	return nil
}
