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

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkCorgiId(c.String("id"))
	if nil != err {
		return err
	}

	paid, err := checkAmount(c.String("payment"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "buyer: %s\n", caller)
		fmt.Fprintf(m.e, "payment: %s\n", paid)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	buyConfig := &rpccalls.BuyData{
		Caller:  caller,
		Id:      id,
		Payment: paid,
	}

	response, err := client.Buy(buyConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
