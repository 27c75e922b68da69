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

func runDelegates(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwnerWithFallback(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDelegates(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
