// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/account"
	"github.com/bitmark-inc/corgid/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// accounts shared by the handler tests
var (
	OwnerAccount    = account.Account("fixture.owner")
	DelegateAccount = account.Account("fixture.delegate")
	ReceiverAccount = account.Account("fixture.receiver")
)

// Entropy - fixed call environment entropy for deterministic rarity
var Entropy = []byte{
	0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04,
	0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
	0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - open a throwaway database under the testing directory
//
// call after SetupTestLogger
func SetupTestStorage() {
	_, err := storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		panic(err)
	}
}

func TeardownTestStorage() {
	storage.Finalise()
}

// Certificate - a freshly generated self signed certificate in PEM form
//
// the matching key comes from the same call to Key
var certificatePEM []byte
var keyPEM []byte

func Certificate() string {
	generatePair()
	return string(certificatePEM)
}

func Key() string {
	generatePair()
	return string(keyPEM)
}

func generatePair() {
	if nil != certificatePEM {
		return
	}
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("corgid testing", validUntil, false, nil)
	if nil != err {
		panic(err)
	}
	certificatePEM = cert
	keyPEM = key
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
