// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing mutation of any number of pools
//
// Begin gives exclusive use of the store until Commit or Abort, so
// each call sees a stable state and either lands completely or not
// at all.  Reads performed through the transaction observe its own
// pending writes and deletes.
type Transaction interface {
	Begin() error
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	Commit() error
	Abort()
}

type transactionData struct {
	exclusive sync.Mutex
	access    Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

// Begin - wait for exclusive use of the store
func (t *transactionData) Begin() error {
	t.exclusive.Lock()
	if err := t.access.Begin(); nil != err {
		t.exclusive.Unlock()
		return err
	}
	return nil
}

func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	t.access.Put(pool.prefixKey(key), value)
}

func (t *transactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(pool.prefixKey(key), buffer)
}

func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	t.access.Delete(pool.prefixKey(key))
}

func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	return t.access.Get(pool.prefixKey(key))
}

func (t *transactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.access.Get(pool.prefixKey(key))
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}

func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	return t.access.Has(pool.prefixKey(key))
}

// Commit - write all pending operations and release the store
func (t *transactionData) Commit() error {
	err := t.access.Commit()
	t.exclusive.Unlock()
	return err
}

// Abort - discard all pending operations and release the store
func (t *transactionData) Abort() {
	t.access.Abort()
	t.exclusive.Unlock()
}
