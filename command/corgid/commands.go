// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/corgid/configuration"
	"github.com/bitmark-inc/corgid/registry"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create certificate files; these commands
// cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "version":
		fmt.Println(version)

	default:
		switch command {
		case "help", "h", "?":
		default:
			fmt.Printf("error: no such command: %s\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                             (h)      - display this message\n\n")
		fmt.Printf("  version                          (v)      - display the program version\n\n")
		fmt.Printf("  gen-rpc-cert                     (rpc)    - create private key and certificate\n")
		fmt.Printf("                [DIRECTORY [IPs...]]         in optional directory with optional extra IP addresses\n\n")
		fmt.Printf("  fingerprint                      (f)      - display the certificate fingerprint\n")
		fmt.Printf("                                               the certificate is from the configuration file\n\n")
		fmt.Printf("  migrate                          (m)      - repack the database to the current generation\n\n")
	}

	return true
}

// config command handler
//
// commands that run after the configuration file has been read
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	switch arguments[0] {
	case "fingerprint", "f":
		keyPair, err := tls.LoadX509KeyPair(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			fmt.Printf("certificate: %q  private key: %q  error: %s\n", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("SHA3-256 fingerprint: %x\n", sha3.Sum256(keyPair.Certificate[0]))
		return true

	default:
		return false
	}
}

// data command handler
//
// commands that may access the internal database
func processDataCommand(log *logger.L, arguments []string) bool {

	switch arguments[0] {
	case "migrate", "m":
		// a required migration already ran during startup, so
		// this is simply a repack to the current generation
		if err := registry.Migrate(); nil != err {
			log.Criticalf("migration error: %s", err)
			exitwithstatus.Message("migration error: %s", err)
		}
		fmt.Println("migration complete")
		return true

	default:
		return false
	}
}

// combine file name with optional directory argument
func getFilenameWithDirectory(arguments []string, name string) string {
	if len(arguments) >= 1 && "" != arguments[0] {
		return filepath.Join(arguments[0], name)
	}
	return name
}
