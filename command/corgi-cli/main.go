// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/corgid/account"
)

type metadata struct {
	connect string
	caller  account.Account
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "corgi-cli"
	app.Usage = "command line access to a corgid node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "",
			Usage:  "*corgid host/IP and port, `HOST:PORT`",
			EnvVar: "CORGI_CLI_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, i",
			Value:  "",
			Usage:  " account `NAME` acting as the caller",
			EnvVar: "CORGI_CLI_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new corgi",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*corgi name `STRING`",
				},
				cli.StringFlag{
					Name:  "quote, q",
					Value: "",
					Usage: " corgi quote `STRING`",
				},
				cli.StringFlag{
					Name:  "colour, C",
					Value: "",
					Usage: " corgi colour `STRING`",
				},
				cli.StringFlag{
					Name:  "background, b",
					Value: "",
					Usage: " corgi background colour `STRING`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: " attached payment `AMOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "get",
			Usage:     "display one corgi with its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "list",
			Usage:     "list a page of all corgis",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "owned",
			Usage:     "list corgis owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the caller",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "owner",
			Usage:     "display the owner of one corgi",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID`",
				},
			},
			Action: runOwner,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a corgi to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID` to transfer",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the corgi `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: " message for the receiver `STRING`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer a corgi on behalf of its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID` to transfer",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*current owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the corgi `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: " message for the receiver `STRING`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "delete",
			Usage:     "delete a corgi",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID` to delete",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "grant",
			Usage:     "grant a delegate access to the caller's corgis",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "delegate, e",
					Value: "",
					Usage: "*delegate `ACCOUNT`",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "withdraw a delegate's access",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "delegate, e",
					Value: "",
					Usage: "*delegate `ACCOUNT`",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "access",
			Usage:     "check whether a delegation exists",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the caller",
				},
				cli.StringFlag{
					Name:  "delegate, e",
					Value: "",
					Usage: "*delegate `ACCOUNT`",
				},
			},
			Action: runAccess,
		},
		{
			Name:      "delegates",
			Usage:     "list all delegates of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the caller",
				},
			},
			Action: runDelegates,
		},
		{
			Name:      "sell",
			Usage:     "offer a corgi for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID` to sell",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*asking price `AMOUNT`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed corgi",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*corgi `ID` to buy",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: "*payment `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "listings",
			Usage:     "list corgis currently for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runListings,
		},
		{
			Name:      "balance",
			Usage:     "display accumulated sale proceeds of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the caller",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display corgid status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display corgi-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// commands that run without a node connection
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		caller, err := checkOptionalAccount(c.GlobalString("caller"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
			fmt.Fprintf(e, "caller: %s\n", caller)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			caller:  caller,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
