// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line access to a running corgid node
//
// e.g. to list the corgis owned by an account:
//
//   corgi-cli -c 127.0.0.1:2130 -i some.account owned
package main
