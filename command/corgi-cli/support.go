// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/payment"
)

var (
	ErrRequiredAmount   = fault.InvalidError("amount is required")
	ErrRequiredCaller   = fault.InvalidError("caller is required")
	ErrRequiredConnect  = fault.InvalidError("connect is required")
	ErrRequiredCorgiId  = fault.InvalidError("corgi id is required")
	ErrRequiredDelegate = fault.InvalidError("delegate is required")
	ErrRequiredName     = fault.InvalidError("name is required")
	ErrRequiredReceiver = fault.InvalidError("receiver is required")
)

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// an account flag that may be left empty
func checkOptionalAccount(name string) (account.Account, error) {
	if "" == name {
		return account.Account(""), nil
	}

	a := account.Account(name)
	if !a.IsValid() {
		return account.Account(""), fault.ErrInvalidAccount
	}
	return a, nil
}

// a required account flag
func checkAccount(name string, missing error) (account.Account, error) {
	if "" == name {
		return account.Account(""), missing
	}

	a := account.Account(name)
	if !a.IsValid() {
		return account.Account(""), fault.ErrInvalidAccount
	}
	return a, nil
}

// the caller comes from the global flag
func checkCaller(m *metadata) (account.Account, error) {
	if "" == m.caller {
		return account.Account(""), ErrRequiredCaller
	}

	return m.caller, nil
}

// an owner flag defaulting to the caller
func checkOwnerWithFallback(c *cli.Context, m *metadata) (account.Account, error) {
	name := c.String("owner")
	if "" == name {
		return checkCaller(m)
	}

	return checkAccount(name, fault.ErrInvalidAccount)
}

// corgi id is required, decimal digits only
func checkCorgiId(id string) (uint64, error) {
	if "" == id {
		return 0, ErrRequiredCorgiId
	}

	return strconv.ParseUint(id, 10, 64)
}

// amount is required, decimal digits only
func checkAmount(amount string) (payment.Amount, error) {
	if "" == amount {
		return payment.Amount{}, ErrRequiredAmount
	}

	var a payment.Amount
	if err := a.UnmarshalText([]byte(amount)); nil != err {
		return payment.Amount{}, err
	}
	return a, nil
}

// an amount flag that may be left empty
func checkOptionalAmount(amount string) (payment.Amount, error) {
	if "" == amount {
		return payment.Amount{}, nil
	}

	return checkAmount(amount)
}
