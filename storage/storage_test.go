// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/corgid/storage"
)

func TestReinitialiseFails(t *testing.T) {
	_, err := storage.Initialise("anywhere", storage.ReadWrite)
	assert.NotNil(t, err, "second Initialise was accepted")
}

func TestPutGetDelete(t *testing.T) {
	pool := storage.Pool.TestData

	trx := beginTransaction(t)
	trx.Put(pool, []byte("pgd-key"), []byte("value one"))
	err := trx.Commit()
	assert.Nil(t, err, "Commit failed")

	assert.Equal(t, []byte("value one"), pool.Get([]byte("pgd-key")), "wrong value")
	assert.True(t, pool.Has([]byte("pgd-key")), "Has failed")

	trx = beginTransaction(t)
	trx.Delete(pool, []byte("pgd-key"))
	err = trx.Commit()
	assert.Nil(t, err, "Commit failed")

	assert.Nil(t, pool.Get([]byte("pgd-key")), "record survived delete")
	assert.False(t, pool.Has([]byte("pgd-key")), "Has after delete")
}

func TestPutN(t *testing.T) {
	pool := storage.Pool.TestData

	trx := beginTransaction(t)
	trx.PutN(pool, []byte("n-key"), 1234)
	err := trx.Commit()
	assert.Nil(t, err, "Commit failed")

	n, found := pool.GetN([]byte("n-key"))
	assert.True(t, found, "GetN did not find the record")
	assert.Equal(t, uint64(1234), n, "wrong count")

	_, found = pool.GetN([]byte("n-missing"))
	assert.False(t, found, "GetN found a missing record")
}

// a transaction must observe its own pending writes and deletes
func TestTransactionVisibility(t *testing.T) {
	pool := storage.Pool.TestData

	trx := beginTransaction(t)
	trx.Put(pool, []byte("vis-key"), []byte("pending"))
	assert.Equal(t, []byte("pending"), trx.Get(pool, []byte("vis-key")), "pending write invisible")
	assert.True(t, trx.Has(pool, []byte("vis-key")), "pending write invisible to Has")

	// not committed yet: the plain handle sees nothing
	assert.Nil(t, pool.Get([]byte("vis-key")), "uncommitted write leaked")

	trx.Delete(pool, []byte("vis-key"))
	assert.Nil(t, trx.Get(pool, []byte("vis-key")), "pending delete invisible")
	assert.False(t, trx.Has(pool, []byte("vis-key")), "pending delete invisible to Has")

	trx.Abort()
}

// an aborted transaction must leave no trace
func TestTransactionAbort(t *testing.T) {
	pool := storage.Pool.TestData

	trx := beginTransaction(t)
	trx.Put(pool, []byte("abort-keep"), []byte("kept"))
	err := trx.Commit()
	assert.Nil(t, err, "Commit failed")

	trx = beginTransaction(t)
	trx.Put(pool, []byte("abort-new"), []byte("dropped"))
	trx.Delete(pool, []byte("abort-keep"))
	trx.Abort()

	assert.Nil(t, pool.Get([]byte("abort-new")), "aborted write committed")
	assert.Equal(t, []byte("kept"), pool.Get([]byte("abort-keep")), "aborted delete committed")
}

// pools with different prefixes must not collide
func TestPoolIsolation(t *testing.T) {
	trx := beginTransaction(t)
	trx.Put(storage.Pool.TestData, []byte("iso"), []byte("test data"))
	err := trx.Commit()
	assert.Nil(t, err, "Commit failed")

	assert.Nil(t, storage.Pool.Control.Get([]byte("iso")), "key leaked between pools")
}

func TestCursor(t *testing.T) {
	pool := storage.Pool.TestData

	trx := beginTransaction(t)
	trx.Put(pool, []byte("cur-a"), []byte{1})
	trx.Put(pool, []byte("cur-b"), []byte{2})
	trx.Put(pool, []byte("cur-c"), []byte{3})
	err := trx.Commit()
	assert.Nil(t, err, "Commit failed")

	cursor := pool.NewFetchCursor().Seek([]byte("cur-"))

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "Fetch failed")
	assert.Equal(t, 2, len(first), "wrong element count")
	assert.Equal(t, []byte("cur-a"), first[0].Key, "wrong first key")
	assert.Equal(t, []byte("cur-b"), first[1].Key, "wrong second key")

	// cursor must restart after the last fetched key
	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "Fetch failed")
	assert.True(t, len(rest) >= 1, "cursor did not advance")
	assert.Equal(t, []byte("cur-c"), rest[0].Key, "wrong continued key")

	_, err = cursor.Fetch(0)
	assert.NotNil(t, err, "zero count was accepted")
}
