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

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkCorgiId(c.String("id"))
	if nil != err {
		return err
	}

	price, err := checkAmount(c.String("price"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "seller: %s\n", caller)
		fmt.Fprintf(m.e, "price: %s\n", price)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	sellConfig := &rpccalls.SellData{
		Caller: caller,
		Id:     id,
		Price:  price,
	}

	response, err := client.Sell(sellConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
