// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/bitmark-inc/corgid/account"
)

// Transferrer - forward funds to a recipient account
//
// a marketplace sale passes the full paid amount through to the
// seller via this interface
type Transferrer interface {
	Transfer(recipient account.Account, amount Amount) error
}
