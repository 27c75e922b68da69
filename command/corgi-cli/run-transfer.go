// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/corgid/command/corgi-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkCorgiId(c.String("id"))
	if nil != err {
		return err
	}

	receiver, err := checkAccount(c.String("receiver"), ErrRequiredReceiver)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "sender: %s\n", caller)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	transferConfig := &rpccalls.TransferData{
		Caller:    caller,
		Recipient: receiver,
		Id:        id,
		Message:   c.String("message"),
	}

	response, err := client.Transfer(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
