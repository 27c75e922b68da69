// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/counter"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/payment"
	rpccorgi "github.com/bitmark-inc/corgid/rpc/corgi"
	"github.com/bitmark-inc/corgid/rpc/corgis"
	"github.com/bitmark-inc/corgid/rpc/escrow"
	"github.com/bitmark-inc/corgid/rpc/market"
	"github.com/bitmark-inc/corgid/rpc/node"
	"github.com/bitmark-inc/corgid/rpc/owner"
)

// Options - node level settings the handlers need
type Options struct {
	CreationFee payment.Amount
	FeeAccount  account.Account
}

// Create - registers every RPC service on one server
func Create(log *logger.L, version string, rpcCount *counter.Counter, options Options) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(rpccorgi.New(log, options.CreationFee, options.FeeAccount))
	_ = server.Register(corgis.New(log))
	_ = server.Register(owner.New(log, ownership.Get()))
	_ = server.Register(escrow.New(log))
	_ = server.Register(market.New(log))
	_ = server.Register(node.New(log, start, version, options.CreationFee, rpcCount))

	return server
}
