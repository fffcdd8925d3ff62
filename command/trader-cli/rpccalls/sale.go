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

// List - offer or delist a batch of assets
func (client *Client) List(caller account.AccountID, offers []rpc.SaleOffer) (*rpc.SaleListReply, error) {
	args := rpc.SaleListArguments{
		Caller: caller,
		Offers: offers,
	}
	client.printJson("List Request", args)

	var reply rpc.SaleListReply
	if err := client.client.Call("Sale.List", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)
	return &reply, nil
}

// Get - the current listing of one asset
func (client *Client) Get(asset nft.ID) (*rpc.SaleGetReply, error) {
	args := rpc.SaleGetArguments{
		Asset: asset,
	}
	client.printJson("Get Request", args)

	var reply rpc.SaleGetReply
	if err := client.client.Call("Sale.Get", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)
	return &reply, nil
}

// AllListed - every asset currently for sale
func (client *Client) AllListed() (*rpc.SaleAllListedReply, error) {
	var reply rpc.SaleAllListedReply
	if err := client.client.Call("Sale.AllListed", rpc.SaleAllListedArguments{}, &reply); nil != err {
		return nil, err
	}

	client.printJson("AllListed Reply", reply)
	return &reply, nil
}
