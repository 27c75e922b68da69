// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/account"
)

func TestIsValid(t *testing.T) {
	testList := []struct {
		id    account.Account
		valid bool
	}{
		{"joe.testnet", true},
		{"robert.testnet", true},
		{"a1", true},
		{"snake_case-mix.ok", true},
		{"", false},
		{"x", false},
		{"Joe.testnet", false},
		{".starts-with-dot", false},
		{"ends-with-dot.", false},
		{"double..dot", false},
		{"has space", false},
		{account.Account("way-too-long-" + string(make([]byte, 64))), false},
	}

	for i, item := range testList {
		assert.Equal(t, item.valid, item.id.IsValid(), "%d: IsValid(%q)", i, item.id)
	}
}

func TestDigest(t *testing.T) {
	joe := account.Account("joe.testnet")

	d1 := joe.Digest()
	d2 := joe.Digest()
	assert.Equal(t, d1, d2, "digest is not deterministic")

	other := account.Account("robert.testnet").Digest()
	assert.NotEqual(t, d1, other, "different accounts share a digest")
}

func TestDigestFromBytes(t *testing.T) {
	d := account.NewDigest([]byte("mike.testnet"))

	var restored account.Digest
	err := account.DigestFromBytes(&restored, d[:])
	assert.Nil(t, err, "DigestFromBytes failed")
	assert.Equal(t, d, restored, "digest did not survive byte round trip")

	err = account.DigestFromBytes(&restored, d[:10])
	assert.NotNil(t, err, "short buffer was accepted")
}

func TestDigestText(t *testing.T) {
	d := account.NewDigest([]byte("joe.testnet"))

	text, err := d.MarshalText()
	assert.Nil(t, err, "MarshalText failed")

	var restored account.Digest
	err = restored.UnmarshalText(text)
	assert.Nil(t, err, "UnmarshalText failed")
	assert.Equal(t, d, restored, "digest did not survive text round trip")

	assert.NotEqual(t, "", d.Base58(), "empty base58 representation")
}
