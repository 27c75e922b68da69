// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/corgid/corgi"
	"github.com/bitmark-inc/corgid/storage"
)

// Migrate - repack records left by an earlier database generation
//
// every stored corgi is rewritten in the current packed form inside
// one transaction, then the database generation is advanced.  Safe
// to run again: up to date records pass through unchanged.
func Migrate() error {
	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	if err := trx.Begin(); nil != err {
		return err
	}

	err = storage.Pool.Corgis.NewFetchCursor().Map(func(key []byte, value []byte) error {
		version, err := corgi.Packed(value).Version()
		if nil != err {
			return err
		}
		if corgi.CurrentPackedVersion == version {
			return nil
		}
		record, err := corgi.Packed(value).Unpack()
		if nil != err {
			return err
		}
		trx.Put(storage.Pool.Corgis, key, record.Pack())
		return nil
	})
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	return storage.MarkMigrationComplete()
}
