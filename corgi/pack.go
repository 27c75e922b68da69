// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corgi

import (
	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/rarity"
)

// Packed - stored form of a corgi record
type Packed []byte

// pack format generations
const (
	PackedVersionOne = 1 // before the marketplace: no listed flag, no price
	PackedVersionTwo = 2 // current

	CurrentPackedVersion = PackedVersionTwo
)

// Pack - serialise a record in the current generation format
func (corgi *Corgi) Pack() Packed {
	buffer := toVarint64(CurrentPackedVersion)
	buffer = append(buffer, toVarint64(corgi.Id)...)
	buffer = appendString(buffer, corgi.Name)
	buffer = appendString(buffer, corgi.Quote)
	buffer = appendString(buffer, corgi.Color)
	buffer = appendString(buffer, corgi.BackgroundColor)
	buffer = append(buffer, toVarint64(uint64(corgi.Rarity))...)
	buffer = append(buffer, toVarint64(uint64(corgi.RarityValue))...)
	buffer = appendString(buffer, string(corgi.Sender))
	buffer = appendString(buffer, corgi.Message)
	if corgi.Listed {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}
	return append(buffer, corgi.ListingPrice.Bytes()...)
}

// Version - generation of a packed record
func (record Packed) Version() (uint64, error) {
	version, n := fromVarint64(record)
	if 0 == n {
		return 0, fault.ErrCannotDecodeRecord
	}
	return version, nil
}

// Unpack - decode a stored record of any known generation
func (record Packed) Unpack() (*Corgi, error) {
	version, n := fromVarint64(record)
	if 0 == n {
		return nil, fault.ErrCannotDecodeRecord
	}
	if version != PackedVersionOne && version != PackedVersionTwo {
		return nil, fault.ErrCannotDecodeRecord
	}
	buffer := record[n:]

	corgi := &Corgi{}

	corgi.Id, buffer = nextVarint64(buffer)
	corgi.Name, buffer = nextString(buffer)
	corgi.Quote, buffer = nextString(buffer)
	corgi.Color, buffer = nextString(buffer)
	corgi.BackgroundColor, buffer = nextString(buffer)

	var tier uint64
	tier, buffer = nextVarint64(buffer)
	corgi.Rarity = rarity.Tier(tier)
	if !corgi.Rarity.IsValid() {
		return nil, fault.ErrCannotDecodeRecord
	}

	var value uint64
	value, buffer = nextVarint64(buffer)
	corgi.RarityValue = uint32(value)

	var sender string
	sender, buffer = nextString(buffer)
	corgi.Sender = account.Account(sender)
	corgi.Message, buffer = nextString(buffer)

	if PackedVersionOne == version {
		if nil == buffer || 0 != len(buffer) {
			return nil, fault.ErrCannotDecodeRecord
		}
		return corgi, nil
	}

	if nil == buffer || len(buffer) != 1+payment.AmountLength {
		return nil, fault.ErrCannotDecodeRecord
	}
	corgi.Listed = 0 != buffer[0]
	if err := payment.AmountFromBytes(&corgi.ListingPrice, buffer[1:]); nil != err {
		return nil, err
	}
	return corgi, nil
}

// string with varint length prefix
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, toVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// decoding helpers: a nil buffer marks an earlier failure and is
// propagated so the caller only checks once at the end
func nextVarint64(buffer []byte) (uint64, []byte) {
	if nil == buffer {
		return 0, nil
	}
	value, n := fromVarint64(buffer)
	if 0 == n {
		return 0, nil
	}
	return value, buffer[n:]
}

func nextString(buffer []byte) (string, []byte) {
	length, buffer := nextVarint64(buffer)
	if nil == buffer || uint64(len(buffer)) < length {
		return "", nil
	}
	return string(buffer[:length]), buffer[length:]
}
