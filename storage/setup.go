// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Corgis     *PoolHandle `prefix:"C"`
	CorgiOwner *PoolHandle `prefix:"W"`
	OwnerList  *PoolHandle `prefix:"L"`
	Access     *PoolHandle `prefix:"E"`
	Balances   *PoolHandle `prefix:"B"`
	Control    *PoolHandle `prefix:"N"`
	TestData   *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// database generations
const (
	currentDBVersion = 2 // generation 2 added the marketplace fields
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open the database
//
// returns true if the data needs migration from a previous
// generation before the daemon may serve calls
func Initialise(database string, readOnly bool) (bool, error) {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return false, fault.ErrAlreadyInitialised
	}

	db, version, err := getDB(database+".leveldb", readOnly)
	if nil != err {
		return false, err
	}

	mustMigrate := false
	switch {
	case version > currentDBVersion:
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		_ = db.Close()
		return false, fault.ErrWrongDatabaseVersion

	case 0 == version:
		// new database
		if !readOnly {
			if err := putVersion(db, currentDBVersion); nil != err {
				_ = db.Close()
				return false, err
			}
		}

	case version < currentDBVersion:
		mustMigrate = true
	}

	poolData.db = db
	poolData.batch = new(leveldb.Batch)
	poolData.cache = newCache()
	poolData.access = newAccess(db, poolData.batch, poolData.cache)
	poolData.trx = newTransaction(poolData.access)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			_ = db.Close()
			poolData.db = nil
			return false, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			db:     db,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return mustMigrate, nil
}

// MarkMigrationComplete - record the current generation after a
// successful data migration
func MarkMigrationComplete() error {
	poolData.Lock()
	defer poolData.Unlock()
	if nil == poolData.db {
		return fault.ErrNotInitialised
	}
	return putVersion(poolData.db, currentDBVersion)
}

// Finalise - close the database
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}
	_ = poolData.db.Close()
	poolData.db = nil
	poolData.batch = nil
	poolData.cache = nil
	poolData.access = nil
	poolData.trx = nil
}

// open the database file and read its version record
func getDB(name string, readOnly bool) (*leveldb.DB, uint64, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if ldb_errors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(name, nil)
	}
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		_ = db.Close()
		return nil, 0, err
	}

	if 8 != len(versionValue) {
		_ = db.Close()
		return nil, 0, fault.ErrWrongDatabaseVersion
	}

	return db, binary.BigEndian.Uint64(versionValue), nil
}

func putVersion(db *leveldb.DB, version uint64) error {
	currentVersion := make([]byte, 8)
	binary.BigEndian.PutUint64(currentVersion, version)
	return db.Put(versionKey, currentVersion, nil)
}

// NewTransaction - access the global exclusive transaction
func NewTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.trx {
		return nil, fault.ErrNotInitialised
	}
	return poolData.trx, nil
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}
