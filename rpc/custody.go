// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
)

// Custody - portfolio custody RPC
type Custody struct {
	log     *logger.L
	limiter *rate.Limiter
}

// CustodyAcceptArguments - arguments for Custody.Accept
type CustodyAcceptArguments struct {
	Caller          account.AccountID   `json:"caller"`
	AuthorizationID uint64              `json:"authorizationId,string"`
	Portfolio       ledger.PortfolioRef `json:"portfolio"`
}

// CustodyAcceptReply - result of Custody.Accept
type CustodyAcceptReply struct {
	Portfolio ledger.PortfolioID `json:"portfolio"`
}

// Accept - take custody of the caller's portfolio
func (c *Custody) Accept(arguments *CustodyAcceptArguments, reply *CustodyAcceptReply) error {
	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	c.log.Infof("Custody.Accept: %+v", arguments)

	portfolio, err := custody.Accept(arguments.Caller, arguments.AuthorizationID, arguments.Portfolio)
	if nil != err {
		return err
	}

	reply.Portfolio = portfolio
	return nil
}

// CustodyReturnArguments - arguments for Custody.Return
type CustodyReturnArguments struct {
	Caller account.AccountID `json:"caller"`
}

// CustodyReturnReply - result of Custody.Return
type CustodyReturnReply struct {
	Portfolio ledger.PortfolioID `json:"portfolio"`
}

// Return - give the caller's portfolio back
func (c *Custody) Return(arguments *CustodyReturnArguments, reply *CustodyReturnReply) error {
	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	c.log.Infof("Custody.Return: %+v", arguments)

	portfolio, err := custody.Return(arguments.Caller)
	if nil != err {
		return err
	}

	reply.Portfolio = portfolio
	return nil
}

const maximumWithdrawCount = 100

// CustodyWithdrawArguments - arguments for Custody.Withdraw
type CustodyWithdrawArguments struct {
	Caller      account.AccountID   `json:"caller"`
	Assets      []nft.ID            `json:"assets"`
	Destination ledger.PortfolioRef `json:"destination"`
}

// CustodyWithdrawReply - result of Custody.Withdraw
type CustodyWithdrawReply struct {
	Assets []nft.ID `json:"assets"`
}

// Withdraw - move tracked assets out of custody
func (c *Custody) Withdraw(arguments *CustodyWithdrawArguments, reply *CustodyWithdrawReply) error {
	if err := rateLimitN(c.limiter, len(arguments.Assets), maximumWithdrawCount); nil != err {
		return err
	}
	c.log.Infof("Custody.Withdraw: %+v", arguments)

	err := custody.Withdraw(arguments.Caller, arguments.Assets, arguments.Destination)
	if nil != err {
		return err
	}

	reply.Assets = arguments.Assets
	return nil
}

// CustodyInfoArguments - arguments for Custody.Info
type CustodyInfoArguments struct {
	Caller account.AccountID `json:"caller"`
}

// CustodyInfoReply - result of Custody.Info
type CustodyInfoReply struct {
	Portfolio ledger.PortfolioID `json:"portfolio"`
	Listed    []nft.ID           `json:"listed"`
}

// Info - the caller's custodial portfolio and tracked assets
func (c *Custody) Info(arguments *CustodyInfoArguments, reply *CustodyInfoReply) error {
	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	portfolio, err := custody.Info(arguments.Caller)
	if nil != err {
		return err
	}

	reply.Portfolio = portfolio.ID
	reply.Listed = portfolio.ListedIDs()
	return nil
}
