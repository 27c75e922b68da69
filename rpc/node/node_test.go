// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/counter"
	"github.com/bitmark-inc/corgid/payment"
	"github.com/bitmark-inc/corgid/registry"
	"github.com/bitmark-inc/corgid/rpc/fixtures"
	"github.com/bitmark-inc/corgid/rpc/node"
	"github.com/bitmark-inc/corgid/storage"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage()

	trx, err := storage.NewTransaction()
	assert.Nil(t, err, "wrong NewTransaction")
	assert.Nil(t, trx.Begin(), "wrong Begin")
	_, err = registry.Create(trx, fixtures.OwnerAccount, registry.CreationData{Name: "status"}, fixtures.Entropy)
	assert.Nil(t, err, "wrong Create")
	assert.Nil(t, trx.Commit(), "wrong Commit")

	c := counter.Counter(0)
	c.Increment()
	c.Increment()

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().UTC().Add(-time.Minute),
		"7.5",
		payment.NewAmount(10),
		&c,
	)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, registry.NextId(), reply.NextId, "wrong next id")
	assert.Equal(t, uint64(1), reply.Live, "wrong live count")
	assert.Equal(t, payment.NewAmount(10), reply.CreationFee, "wrong fee")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong connection count")
	assert.Equal(t, "7.5", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "missing uptime")
}
