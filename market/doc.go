// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - offer corgis for sale and settle purchases
//
// a listing is part of the corgi record itself, so a transfer or
// deletion automatically takes the corgi off the market
package market
