// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/rarity"
)

// Corgi - a unique collectible
//
// the record never stores its owner; ownership lives in the forward
// map and the owner index so a transfer does not rewrite the record
type Corgi struct {
	Id              uint64          `json:"id"`
	Name            string          `json:"name"`
	Quote           string          `json:"quote"`
	Color           string          `json:"color"`
	BackgroundColor string          `json:"backgroundColor"`
	Rarity          rarity.Tier     `json:"rarity"`
	RarityValue     uint32          `json:"rarityValue"`
	Sender          account.Account `json:"sender"`
	Message         string          `json:"message"`
	Listed          bool            `json:"listed"`
	ListingPrice    payment.Amount  `json:"listingPrice"`
}
