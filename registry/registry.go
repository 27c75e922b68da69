// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/fault"
	"github.com/bitmark-inc/corgid/ownership"
	"github.com/bitmark-inc/corgid/rarity"
	"github.com/bitmark-inc/corgid/storage"
)

// allocation counter in the control pool
var nextIdKey = []byte("next-corgi-id")

// CreationData - the caller supplied portion of a new corgi
type CreationData struct {
	Name            string `json:"name"`
	Quote           string `json:"quote"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

// Create - mint a new corgi for an owner
//
// rarity is drawn from the supplied entropy combined with the
// allocated id, so two corgis minted in the same call environment
// still differ
func Create(trx storage.Transaction, owner account.Account, data CreationData, entropy []byte) (*corgi.Corgi, error) {
	if !owner.IsValid() {
		return nil, fault.ErrInvalidAccount
	}

	id, _ := trx.GetN(storage.Pool.Control, nextIdKey)

	tier, value := rarity.Generate(entropy, id)

	record := &corgi.Corgi{
		Id:              id,
		Name:            data.Name,
		Quote:           data.Quote,
		Color:           data.Color,
		BackgroundColor: data.BackgroundColor,
		Rarity:          tier,
		RarityValue:     value,
	}

	trx.Put(storage.Pool.Corgis, ownership.IdKey(id), record.Pack())
	ownership.Assign(trx, id, owner)
	trx.PutN(storage.Pool.Control, nextIdKey, id+1)

	return record, nil
}

// Get - look up one corgi by id
//
// a nil transaction reads committed data only
func Get(trx storage.Transaction, id uint64) (*corgi.Corgi, error) {
	var packed []byte
	if nil == trx {
		packed = storage.Pool.Corgis.Get(ownership.IdKey(id))
	} else {
		packed = trx.Get(storage.Pool.Corgis, ownership.IdKey(id))
	}
	if nil == packed {
		return nil, fault.ErrCorgiNotFound
	}
	return corgi.Packed(packed).Unpack()
}

// NextId - the id the next created corgi will receive
func NextId() uint64 {
	id, _ := storage.Pool.Control.GetN(nextIdKey)
	return id
}

// Count - number of corgis currently existing
//
// a full scan, only meant for status reporting
func Count() (uint64, error) {
	n := uint64(0)
	err := storage.Pool.Corgis.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	if nil != err {
		return 0, err
	}
	return n, nil
}

// List - the corgis of the id window [start, start+count)
//
// the window is clamped to the allocated id range; deleted ids
// inside it are skipped, so the page may be short
func List(start uint64, count int) ([]*corgi.Corgi, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	end := start + uint64(count)
	if next := NextId(); end > next {
		end = next
	}

	// the window holds at most count ids so one fetch covers it
	cursor := storage.Pool.Corgis.NewFetchCursor().Seek(ownership.IdKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*corgi.Corgi, 0, len(elements))
	for _, element := range elements {
		if binary.BigEndian.Uint64(element.Key) >= end {
			break
		}
		record, err := corgi.Packed(element.Value).Unpack()
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
