// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/rpc/escrow"
)

// DelegationData - data for a grant or revoke request
type DelegationData struct {
	Caller   account.Account
	Delegate account.Account
}

// Grant - allow a delegate to act on the caller's corgis
func (client *Client) Grant(grantConfig *DelegationData) (*escrow.GrantReply, error) {

	grantArgs := escrow.GrantArguments{
		Caller:   grantConfig.Caller,
		Delegate: grantConfig.Delegate,
	}

	client.printJson("Grant Request", grantArgs)

	reply := &escrow.GrantReply{}
	err := client.client.Call("Escrow.Grant", grantArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Grant Reply", reply)

	return reply, nil
}

// Revoke - withdraw a delegation
func (client *Client) Revoke(revokeConfig *DelegationData) (*escrow.RevokeReply, error) {

	revokeArgs := escrow.RevokeArguments{
		Caller:   revokeConfig.Caller,
		Delegate: revokeConfig.Delegate,
	}

	client.printJson("Revoke Request", revokeArgs)

	reply := &escrow.RevokeReply{}
	err := client.client.Call("Escrow.Revoke", revokeArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Revoke Reply", reply)

	return reply, nil
}

// CheckAccess - query whether a delegation exists
func (client *Client) CheckAccess(owner account.Account, delegate account.Account) (*escrow.CheckReply, error) {

	checkArgs := escrow.CheckArguments{
		Owner:    owner,
		Delegate: delegate,
	}

	client.printJson("Check Request", checkArgs)

	reply := &escrow.CheckReply{}
	err := client.client.Call("Escrow.Check", checkArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Check Reply", reply)

	return reply, nil
}

// GetDelegates - all current delegates of an owner
func (client *Client) GetDelegates(owner account.Account) (*escrow.ListReply, error) {

	listArgs := escrow.ListArguments{
		Owner: owner,
	}

	client.printJson("Delegates Request", listArgs)

	reply := &escrow.ListReply{}
	err := client.client.Call("Escrow.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Delegates Reply", reply)

	return reply, nil
}
