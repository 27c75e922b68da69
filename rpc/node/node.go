// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/counter"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	CreationFee payment.Amount
	counter     *counter.Counter
}

func New(log *logger.L, start time.Time, version string, creationFee payment.Amount, rpcCount *counter.Counter) *Node {
	return &Node{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		CreationFee: creationFee,
		counter:     rpcCount,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	NextId      uint64         `json:"nextId,string"`
	Live        uint64         `json:"live,string"`
	CreationFee payment.Amount `json:"creationFee"`
	RPCs        uint64         `json:"rpcs"`
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
}

// Info - node status
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	live, err := registry.Count()
	if nil != err {
		return err
	}

	reply.NextId = registry.NextId()
	reply.Live = live
	reply.CreationFee = node.CreationFee
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
