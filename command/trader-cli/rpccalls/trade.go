// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/rpc"
)

// Buy - purchase one listed asset attaching amount
func (client *Client) Buy(caller account.AccountID, asset nft.ID, amount uint64) (*rpc.TradeBuyReply, error) {
	args := rpc.TradeBuyArguments{
		Caller: caller,
		Asset:  asset,
		Amount: amount,
	}
	client.printJson("Buy Request", args)

	var reply rpc.TradeBuyReply
	if err := client.client.Call("Trade.Buy", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Buy Reply", reply)
	return &reply, nil
}
