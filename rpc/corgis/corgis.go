// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgis

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
)

// Corgis - type for the RPC
type Corgis struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	// limit for count
	MaximumListCount = 100

	rateLimitCorgis = 200
	rateBurstCorgis = 100
)

func New(log *logger.L) *Corgis {
	return &Corgis{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCorgis, rateBurstCorgis),
	}
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - result of list RPC
type ListReply struct {
	Corgis []*corgi.Corgi `json:"corgis"`
	Next   uint64         `json:"next,string"`
	NextId uint64         `json:"nextId,string"`
}

// List - a page of all existing corgis
func (c *Corgis) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	c.Log.Infof("Corgis.List: %+v", arguments)

	records, err := registry.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Corgis = records

	// the page covers the id window [Start, Start+Count) even when
	// deleted ids leave it short
	reply.NextId = registry.NextId()
	reply.Next = arguments.Start + uint64(arguments.Count)
	if reply.Next > reply.NextId {
		reply.Next = reply.NextId
	}
	return nil
}
