// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
)

// Owner - type for the RPC
type Owner struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ownership ownership.Ownership
}

const (
	// limit for count
	MaximumCorgisCount = 100

	rateLimitOwner = 200
	rateBurstOwner = 100
)

func New(log *logger.L, os ownership.Ownership) *Owner {
	return &Owner{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Ownership: os,
	}
}

// CorgisArguments - arguments for RPC
type CorgisArguments struct {
	Owner account.Account `json:"owner"`
	Start uint64          `json:"start,string"`
	Count int             `json:"count"`
}

// CorgisReply - result of owner RPC
type CorgisReply struct {
	Next   uint64         `json:"next,string"`
	Corgis []*corgi.Corgi `json:"corgis"`
}

// Corgis - list corgis belonging to an account
func (owner *Owner) Corgis(arguments *CorgisArguments, reply *CorgisReply) error {
	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumCorgisCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Corgis: %+v", arguments)

	ids, err := owner.Ownership.ListFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("ownership: %+v", ids)

	records := make([]*corgi.Corgi, 0, len(ids))
	for _, id := range ids {
		record, err := registry.Get(nil, id)
		if nil != err {
			// the index named an id the registry does not hold
			log.Criticalf("missing corgi record for id: %d", id)
			return fault.ErrCorgiNotFound
		}
		records = append(records, record)
	}

	reply.Corgis = records
	if n := len(ids); n > 0 {
		reply.Next = ids[n-1] + 1
	} else {
		reply.Next = arguments.Start
	}
	return nil
}

// ---

// OfArguments - arguments for RPC
type OfArguments struct {
	Id uint64 `json:"id,string"`
}

// OfReply - result of owner lookup RPC
type OfReply struct {
	Id    uint64          `json:"id,string"`
	Owner account.Account `json:"owner"`
}

// Of - current owner of a single corgi
func (owner *Owner) Of(arguments *OfArguments, reply *OfReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	owner.Log.Infof("Owner.Of: %+v", arguments)

	acc, err := owner.Ownership.OwnerOf(arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Owner = acc
	return nil
}
