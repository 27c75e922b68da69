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

func runRevoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	delegate, err := checkAccount(c.String("delegate"), ErrRequiredDelegate)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", caller)
		fmt.Fprintf(m.e, "delegate: %s\n", delegate)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	revokeConfig := &rpccalls.DelegationData{
		Caller:   caller,
		Delegate: delegate,
	}

	response, err := client.Revoke(revokeConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
