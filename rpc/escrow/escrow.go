// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/escrow"
	"github.com/bitmark-inc/corgid/rpc/ratelimit"
	"github.com/bitmark-inc/corgid/storage"
)

// Escrow - type for the RPC
type Escrow struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitEscrow = 200
	rateBurstEscrow = 100
)

func New(log *logger.L) *Escrow {
	return &Escrow{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
	}
}

// GrantArguments - arguments for RPC
type GrantArguments struct {
	Caller   account.Account `json:"caller"`
	Delegate account.Account `json:"delegate"`
}

// GrantReply - result of grant RPC
type GrantReply struct {
	Granted bool `json:"granted"`
}

// Grant - caller allows a delegate to act on its corgis
func (e *Escrow) Grant(arguments *GrantArguments, reply *GrantReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Grant: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	if err := escrow.Grant(trx, arguments.Caller, arguments.Delegate); nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Granted = true
	return nil
}

// ---

// RevokeArguments - arguments for RPC
type RevokeArguments struct {
	Caller   account.Account `json:"caller"`
	Delegate account.Account `json:"delegate"`
}

// RevokeReply - result of revoke RPC
type RevokeReply struct {
	Revoked bool `json:"revoked"`
}

// Revoke - caller withdraws a delegation
func (e *Escrow) Revoke(arguments *RevokeArguments, reply *RevokeReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Revoke: %+v", arguments)

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	if err := escrow.Revoke(trx, arguments.Caller, arguments.Delegate); nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Revoked = true
	return nil
}

// ---

// CheckArguments - arguments for RPC
type CheckArguments struct {
	Owner    account.Account `json:"owner"`
	Delegate account.Account `json:"delegate"`
}

// CheckReply - result of check RPC
type CheckReply struct {
	HasAccess bool `json:"hasAccess"`
}

// Check - query whether a delegation exists
func (e *Escrow) Check(arguments *CheckArguments, reply *CheckReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Check: %+v", arguments)

	reply.HasAccess = escrow.Check(nil, arguments.Owner, arguments.Delegate)
	return nil
}

// ---

// ListArguments - arguments for RPC
type ListArguments struct {
	Owner account.Account `json:"owner"`
}

// ListReply - result of list RPC
//
// delegates are reported by digest in base58 form
type ListReply struct {
	Delegates []string `json:"delegates"`
}

// List - all current delegates of an owner
func (e *Escrow) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.List: %+v", arguments)

	digests, err := escrow.ListFor(arguments.Owner)
	if nil != err {
		return err
	}

	delegates := make([]string, len(digests))
	for i, digest := range digests {
		delegates[i] = digest.Base58()
	}
	reply.Delegates = delegates
	return nil
}
