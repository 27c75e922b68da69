// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/corgid/counter"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := counter.Counter(0)

	assert.True(t, c.IsZero(), "initial counter not zero")

	n := c.Increment()
	assert.Equal(t, uint64(1), n, "wrong increment result")

	n = c.Decrement()
	assert.Equal(t, uint64(0), n, "wrong decrement result")
	assert.True(t, c.IsZero(), "counter not back to zero")
}

func TestCounterConcurrent(t *testing.T) {
	c := counter.Counter(0)

	loops := 1000
	workers := 8

	wg := sync.WaitGroup{}
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*loops), c.Uint64(), "wrong final count")
}
