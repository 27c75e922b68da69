// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/rpc/owner"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner account.Account
	Start uint64
	Count int
}

// GetOwned - obtain list of owned corgis
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.CorgisReply, error) {

	ownedArgs := owner.CorgisArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &owner.CorgisReply{}
	err := client.client.Call("Owner.Corgis", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}

// GetOwnerOf - lookup the current owner of one corgi
func (client *Client) GetOwnerOf(id uint64) (*owner.OfReply, error) {

	ofArgs := owner.OfArguments{
		Id: id,
	}

	client.printJson("Owner Request", ofArgs)

	reply := &owner.OfReply{}
	err := client.client.Call("Owner.Of", ofArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owner Reply", reply)

	return reply, nil
}
