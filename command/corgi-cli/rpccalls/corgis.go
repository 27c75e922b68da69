// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/corgid/rpc/corgis"
)

// ListData - data for a global list request
type ListData struct {
	Start uint64
	Count int
}

// List - obtain a page of all corgis
func (client *Client) List(listConfig *ListData) (*corgis.ListReply, error) {

	listArgs := corgis.ListArguments{
		Start: listConfig.Start,
		Count: listConfig.Count,
	}

	client.printJson("List Request", listArgs)

	reply := &corgis.ListReply{}
	err := client.client.Call("Corgis.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
