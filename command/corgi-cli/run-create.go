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

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	attached, err := checkOptionalAmount(c.String("payment"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "name: %q\n", name)
		fmt.Fprintf(m.e, "payment: %s\n", attached)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	createConfig := &rpccalls.CreateData{
		Caller:          caller,
		Name:            name,
		Quote:           c.String("quote"),
		Color:           c.String("colour"),
		BackgroundColor: c.String("background"),
		Payment:         attached,
	}

	response, err := client.Create(createConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
