// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rarity

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/bitmark-inc/logger"
)

// seed layout: up to 24 bytes of host entropy zero padded,
// followed by the 8 byte little endian corgi id
const (
	seedLength        = 32
	maximumEntropy    = 24
	drawLength        = 8 // two 32 bit draws
	attributeModulus  = 100
	tierModulus       = 50
	commonThreshold   = 30
	uncommonThreshold = 13
	rareThreshold     = 3
)

// Generate - derive the rarity tier and numeric attribute for a corgi
//
// entropy is the opaque per-call blob from the host; only the first
// 24 bytes are used and a shorter blob is zero padded.  Mixing the id
// into the seed makes draws independent per corgi even when several
// corgis are created under the same call-level entropy.
func Generate(entropy []byte, id uint64) (Tier, uint32) {
	seed := make([]byte, seedLength)
	n := len(entropy)
	if n > maximumEntropy {
		n = maximumEntropy
	}
	copy(seed, entropy[:n])
	binary.LittleEndian.PutUint64(seed[maximumEntropy:], id)

	stream, err := chacha20.NewUnauthenticatedCipher(seed, make([]byte, chacha20.NonceSize))
	logger.PanicIfError("rarity.Generate", err)

	draw := make([]byte, drawLength)
	stream.XORKeyStream(draw, draw)

	r1 := binary.LittleEndian.Uint32(draw[0:4]) % attributeModulus
	r2 := binary.LittleEndian.Uint32(draw[4:8]) % tierModulus

	tier := tierForDraw(r2)
	return tier, r1 + tier.Bonus()
}

// map a draw in [0, 50) to its tier
func tierForDraw(r uint32) Tier {
	switch {
	case r > commonThreshold:
		return Common
	case r > uncommonThreshold:
		return Uncommon
	case r > rareThreshold:
		return Rare
	case r > 0:
		return VeryRare
	default:
		return UltraRare
	}
}
