// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/payment"
	rpccorgi "github.com/bitmark-inc/corgid/rpc/corgi"
)

// CreateData - data for a create request
type CreateData struct {
	Caller          account.Account
	Name            string
	Quote           string
	Color           string
	BackgroundColor string
	Payment         payment.Amount
}

// Create - mint a new corgi
func (client *Client) Create(createConfig *CreateData) (*rpccorgi.CreateReply, error) {

	createArgs := rpccorgi.CreateArguments{
		Caller:          createConfig.Caller,
		Name:            createConfig.Name,
		Quote:           createConfig.Quote,
		Color:           createConfig.Color,
		BackgroundColor: createConfig.BackgroundColor,
		Payment:         createConfig.Payment,
	}

	client.printJson("Create Request", createArgs)

	reply := &rpccorgi.CreateReply{}
	err := client.client.Call("Corgi.Create", createArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return reply, nil
}

// Get - fetch one corgi with its owner
func (client *Client) Get(id uint64) (*rpccorgi.GetReply, error) {

	getArgs := rpccorgi.GetArguments{
		Id: id,
	}

	client.printJson("Get Request", getArgs)

	reply := &rpccorgi.GetReply{}
	err := client.client.Call("Corgi.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return reply, nil
}

// TransferData - data for a transfer request
type TransferData struct {
	Caller    account.Account
	Owner     account.Account // only for TransferFrom
	Recipient account.Account
	Id        uint64
	Message   string
}

// Transfer - owner gives a corgi away
func (client *Client) Transfer(transferConfig *TransferData) (*rpccorgi.TransferReply, error) {

	transferArgs := rpccorgi.TransferArguments{
		Caller:    transferConfig.Caller,
		Recipient: transferConfig.Recipient,
		Id:        transferConfig.Id,
		Message:   transferConfig.Message,
	}

	client.printJson("Transfer Request", transferArgs)

	reply := &rpccorgi.TransferReply{}
	err := client.client.Call("Corgi.Transfer", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

// TransferFrom - delegate moves a corgi on behalf of its owner
func (client *Client) TransferFrom(transferConfig *TransferData) (*rpccorgi.TransferReply, error) {

	transferArgs := rpccorgi.TransferFromArguments{
		Caller:    transferConfig.Caller,
		Owner:     transferConfig.Owner,
		Recipient: transferConfig.Recipient,
		Id:        transferConfig.Id,
		Message:   transferConfig.Message,
	}

	client.printJson("TransferFrom Request", transferArgs)

	reply := &rpccorgi.TransferReply{}
	err := client.client.Call("Corgi.TransferFrom", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("TransferFrom Reply", reply)

	return reply, nil
}

// Delete - remove a corgi entirely
func (client *Client) Delete(caller account.Account, id uint64) (*rpccorgi.DeleteReply, error) {

	deleteArgs := rpccorgi.DeleteArguments{
		Caller: caller,
		Id:     id,
	}

	client.printJson("Delete Request", deleteArgs)

	reply := &rpccorgi.DeleteReply{}
	err := client.client.Call("Corgi.Delete", deleteArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Delete Reply", reply)

	return reply, nil
}
