// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/rpc/market"
)

// SellData - data for a sale listing request
type SellData struct {
	Caller account.Account
	Id     uint64
	Price  payment.Amount
}

// Sell - offer a corgi for sale
func (client *Client) Sell(sellConfig *SellData) (*market.SellReply, error) {

	sellArgs := market.SellArguments{
		Caller: sellConfig.Caller,
		Id:     sellConfig.Id,
		Price:  sellConfig.Price,
	}

	client.printJson("Sell Request", sellArgs)

	reply := &market.SellReply{}
	err := client.client.Call("Market.Sell", sellArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Sell Reply", reply)

	return reply, nil
}

// BuyData - data for a purchase request
type BuyData struct {
	Caller  account.Account
	Id      uint64
	Payment payment.Amount
}

// Buy - purchase a listed corgi
func (client *Client) Buy(buyConfig *BuyData) (*market.BuyReply, error) {

	buyArgs := market.BuyArguments{
		Caller:  buyConfig.Caller,
		Id:      buyConfig.Id,
		Payment: buyConfig.Payment,
	}

	client.printJson("Buy Request", buyArgs)

	reply := &market.BuyReply{}
	err := client.client.Call("Market.Buy", buyArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Buy Reply", reply)

	return reply, nil
}

// GetListings - obtain a page of corgis currently for sale
func (client *Client) GetListings(listConfig *ListData) (*market.ListingsReply, error) {

	listingsArgs := market.ListingsArguments{
		Start: listConfig.Start,
		Count: listConfig.Count,
	}

	client.printJson("Listings Request", listingsArgs)

	reply := &market.ListingsReply{}
	err := client.client.Call("Market.Listings", listingsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Listings Reply", reply)

	return reply, nil
}

// GetBalance - accumulated sale proceeds of an account
func (client *Client) GetBalance(owner account.Account) (*market.BalanceReply, error) {

	balanceArgs := market.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &market.BalanceReply{}
	err := client.client.Call("Market.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}
