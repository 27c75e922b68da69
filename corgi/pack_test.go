// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/rarity"
)

func sample() *corgi.Corgi {
	return &corgi.Corgi{
		Id:              19,
		Name:            "Rex",
		Quote:           "who is a good boy",
		Color:           "#f4a460",
		BackgroundColor: "#ffffff",
		Rarity:          rarity.Rare,
		RarityValue:     142,
		Sender:          "joe.testnet",
		Message:         "happy birthday",
		Listed:          true,
		ListingPrice:    payment.Amount{Hi: 1, Lo: 500},
	}
}

func TestPackUnpack(t *testing.T) {
	original := sample()

	packed := original.Pack()

	version, err := packed.Version()
	assert.Nil(t, err, "Version failed")
	assert.Equal(t, uint64(corgi.CurrentPackedVersion), version, "wrong pack version")

	restored, err := packed.Unpack()
	assert.Nil(t, err, "Unpack failed")
	assert.Equal(t, original, restored, "record did not survive pack round trip")
}

func TestPackEmptyStrings(t *testing.T) {
	original := &corgi.Corgi{Id: 0, Rarity: rarity.Common}

	restored, err := original.Pack().Unpack()
	assert.Nil(t, err, "Unpack failed")
	assert.Equal(t, original, restored, "empty record did not survive pack round trip")
}

func TestUnpackTruncated(t *testing.T) {
	packed := sample().Pack()

	// every proper prefix must fail, never panic
	for i := 0; i < len(packed); i += 1 {
		_, err := packed[:i].Unpack()
		assert.NotNil(t, err, "truncation at %d was accepted", i)
	}

	_, err := corgi.Packed(nil).Unpack()
	assert.NotNil(t, err, "nil record was accepted")
}

func TestUnpackUnknownVersion(t *testing.T) {
	packed := sample().Pack()
	bad := append(corgi.Packed{99}, packed[1:]...)
	_, err := bad.Unpack()
	assert.NotNil(t, err, "unknown generation was accepted")
}

func TestUnpackBadRarity(t *testing.T) {
	record := sample()
	record.Rarity = rarity.Tier(250)
	_, err := record.Pack().Unpack()
	assert.NotNil(t, err, "invalid rarity was accepted")
}
