// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// Account - an account identifier
type Account string

// limits on an account identifier
const (
	minAccountLength = 2
	maxAccountLength = 64
)

// IsValid - check the identifier is usable as an account
//
// lowercase alphanumeric separated by single '.', '-' or '_'
func (account Account) IsValid() bool {
	n := len(account)
	if n < minAccountLength || n > maxAccountLength {
		return false
	}
	lastWasSeparator := true // separator cannot start the identifier
	for i := 0; i < n; i += 1 {
		c := account[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			lastWasSeparator = false
		case c == '.' || c == '-' || c == '_':
			if lastWasSeparator {
				return false
			}
			lastWasSeparator = true
		default:
			return false
		}
	}
	return !lastWasSeparator // separator cannot end the identifier
}

// Bytes - byte form for hashing
func (account Account) Bytes() []byte {
	return []byte(account)
}

// String - the identifier itself
func (account Account) String() string {
	return string(account)
}

// Digest - the map key for this account
func (account Account) Digest() Digest {
	return NewDigest(account.Bytes())
}
