// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/rpc"
)

// Accept - take custody of the caller's portfolio
func (client *Client) Accept(caller account.AccountID, authorizationID uint64, portfolio ledger.PortfolioRef) (*rpc.CustodyAcceptReply, error) {
	args := rpc.CustodyAcceptArguments{
		Caller:          caller,
		AuthorizationID: authorizationID,
		Portfolio:       portfolio,
	}
	client.printJson("Accept Request", args)

	var reply rpc.CustodyAcceptReply
	if err := client.client.Call("Custody.Accept", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Accept Reply", reply)
	return &reply, nil
}

// Return - give the caller's portfolio back
func (client *Client) Return(caller account.AccountID) (*rpc.CustodyReturnReply, error) {
	args := rpc.CustodyReturnArguments{
		Caller: caller,
	}
	client.printJson("Return Request", args)

	var reply rpc.CustodyReturnReply
	if err := client.client.Call("Custody.Return", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Return Reply", reply)
	return &reply, nil
}

// Withdraw - move tracked assets out of custody
func (client *Client) Withdraw(caller account.AccountID, assets []nft.ID, destination ledger.PortfolioRef) (*rpc.CustodyWithdrawReply, error) {
	args := rpc.CustodyWithdrawArguments{
		Caller:      caller,
		Assets:      assets,
		Destination: destination,
	}
	client.printJson("Withdraw Request", args)

	var reply rpc.CustodyWithdrawReply
	if err := client.client.Call("Custody.Withdraw", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)
	return &reply, nil
}

// Info - the caller's custodial portfolio and tracked assets
func (client *Client) Info(caller account.AccountID) (*rpc.CustodyInfoReply, error) {
	args := rpc.CustodyInfoArguments{
		Caller: caller,
	}
	client.printJson("Info Request", args)

	var reply rpc.CustodyInfoReply
	if err := client.client.Call("Custody.Info", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)
	return &reply, nil
}
