// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"math/big"
	"math/bits"

	"github.com/bitmark-inc/corgid/fault"
)

// AmountLength - number of bytes in a packed amount
const AmountLength = 16

// Amount - unsigned 128 bit amount
type Amount struct {
	Hi uint64
	Lo uint64
}

// NewAmount - amount from a 64 bit value
func NewAmount(value uint64) Amount {
	return Amount{Lo: value}
}

// IsZero - check for an empty amount
func (amount Amount) IsZero() bool {
	return 0 == amount.Hi && 0 == amount.Lo
}

// Cmp - compare two amounts: -1, 0 or +1
func (amount Amount) Cmp(other Amount) int {
	switch {
	case amount.Hi < other.Hi:
		return -1
	case amount.Hi > other.Hi:
		return 1
	case amount.Lo < other.Lo:
		return -1
	case amount.Lo > other.Lo:
		return 1
	default:
		return 0
	}
}

// Add - sum of two amounts, wrapping on 128 bit overflow
func (amount Amount) Add(other Amount) Amount {
	lo, carry := bits.Add64(amount.Lo, other.Lo, 0)
	hi, _ := bits.Add64(amount.Hi, other.Hi, carry)
	return Amount{Hi: hi, Lo: lo}
}

// Bytes - 16 byte big endian form for storage
func (amount Amount) Bytes() []byte {
	buffer := make([]byte, AmountLength)
	for i := 0; i < 8; i += 1 {
		buffer[i] = byte(amount.Hi >> (56 - 8*uint(i)))
		buffer[8+i] = byte(amount.Lo >> (56 - 8*uint(i)))
	}
	return buffer
}

// AmountFromBytes - decode a 16 byte big endian amount
func AmountFromBytes(amount *Amount, buffer []byte) error {
	if AmountLength != len(buffer) {
		return fault.ErrInvalidAmount
	}
	amount.Hi = 0
	amount.Lo = 0
	for i := 0; i < 8; i += 1 {
		amount.Hi = amount.Hi<<8 | uint64(buffer[i])
		amount.Lo = amount.Lo<<8 | uint64(buffer[8+i])
	}
	return nil
}

// String - decimal representation
func (amount Amount) String() string {
	b := new(big.Int).SetUint64(amount.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(amount.Lo))
	return b.String()
}

// MarshalText - decimal string for JSON
//
// 128 bit amounts do not fit a JSON number
func (amount Amount) MarshalText() ([]byte, error) {
	return []byte(amount.String()), nil
}

// UnmarshalText - parse a decimal string from JSON
func (amount *Amount) UnmarshalText(s []byte) error {
	b, ok := new(big.Int).SetString(string(s), 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return fault.ErrInvalidAmount
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	amount.Lo = new(big.Int).And(b, mask).Uint64()
	amount.Hi = new(big.Int).Rsh(b, 64).Uint64()
	return nil
}
