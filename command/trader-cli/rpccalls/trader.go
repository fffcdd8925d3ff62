// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/rpc"
)

// Initialize - open the marketplace; admin only
func (client *Client) Initialize(caller account.AccountID) (*rpc.TraderInitializeReply, error) {
	args := rpc.TraderInitializeArguments{
		Caller: caller,
	}
	client.printJson("Initialize Request", args)

	var reply rpc.TraderInitializeReply
	if err := client.client.Call("Trader.Initialize", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Initialize Reply", reply)
	return &reply, nil
}

// CloseMarket - close the marketplace permanently; admin only
func (client *Client) CloseMarket(caller account.AccountID) (*rpc.TraderCloseReply, error) {
	args := rpc.TraderCloseArguments{
		Caller: caller,
	}
	client.printJson("Close Request", args)

	var reply rpc.TraderCloseReply
	if err := client.client.Call("Trader.Close", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Close Reply", reply)
	return &reply, nil
}

// Status - lifecycle state, venue and daemon information
func (client *Client) Status() (*rpc.TraderStatusReply, error) {
	var reply rpc.TraderStatusReply
	if err := client.client.Call("Trader.Status", rpc.TraderStatusArguments{}, &reply); nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)
	return &reply, nil
}
