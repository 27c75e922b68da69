// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/payment"
)

func TestCmp(t *testing.T) {
	testList := []struct {
		a        payment.Amount
		b        payment.Amount
		expected int
	}{
		{payment.NewAmount(0), payment.NewAmount(0), 0},
		{payment.NewAmount(1), payment.NewAmount(2), -1},
		{payment.NewAmount(2), payment.NewAmount(1), 1},
		{payment.Amount{Hi: 1, Lo: 0}, payment.NewAmount(^uint64(0)), 1},
		{payment.NewAmount(^uint64(0)), payment.Amount{Hi: 1, Lo: 0}, -1},
		{payment.Amount{Hi: 1, Lo: 5}, payment.Amount{Hi: 1, Lo: 5}, 0},
	}

	for i, item := range testList {
		assert.Equal(t, item.expected, item.a.Cmp(item.b), "%d: Cmp", i)
	}
}

func TestAdd(t *testing.T) {
	sum := payment.NewAmount(^uint64(0)).Add(payment.NewAmount(1))
	assert.Equal(t, payment.Amount{Hi: 1, Lo: 0}, sum, "carry into high word")

	sum = payment.NewAmount(40).Add(payment.NewAmount(2))
	assert.Equal(t, payment.NewAmount(42), sum, "simple sum")
}

func TestBytes(t *testing.T) {
	a := payment.Amount{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}

	buffer := a.Bytes()
	assert.Equal(t, payment.AmountLength, len(buffer), "packed length")
	assert.Equal(t, byte(0x01), buffer[0], "big endian high byte")
	assert.Equal(t, byte(0x10), buffer[15], "big endian low byte")

	var restored payment.Amount
	err := payment.AmountFromBytes(&restored, buffer)
	assert.Nil(t, err, "AmountFromBytes failed")
	assert.Equal(t, a, restored, "byte round trip")

	err = payment.AmountFromBytes(&restored, buffer[:7])
	assert.NotNil(t, err, "short buffer was accepted")
}

func TestText(t *testing.T) {
	a := payment.Amount{Hi: 1, Lo: 0}
	assert.Equal(t, "18446744073709551616", a.String(), "2^64 as decimal")

	var restored payment.Amount
	err := restored.UnmarshalText([]byte("18446744073709551616"))
	assert.Nil(t, err, "UnmarshalText failed")
	assert.Equal(t, a, restored, "text round trip")

	err = restored.UnmarshalText([]byte("-5"))
	assert.NotNil(t, err, "negative amount was accepted")

	err = restored.UnmarshalText([]byte("340282366920938463463374607431768211456")) // 2^128
	assert.NotNil(t, err, "overflowing amount was accepted")

	err = restored.UnmarshalText([]byte("not a number"))
	assert.NotNil(t, err, "junk was accepted")
}
