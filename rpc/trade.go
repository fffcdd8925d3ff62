// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/trade"
)

// Trade - purchase RPC
type Trade struct {
	log     *logger.L
	limiter *rate.Limiter
}

// TradeBuyArguments - arguments for Trade.Buy
type TradeBuyArguments struct {
	Caller account.AccountID `json:"caller"`
	Asset  nft.ID            `json:"asset,string"`
	Amount uint64            `json:"amount,string"`
}

// TradeBuyReply - result of Trade.Buy
type TradeBuyReply struct {
	Portfolio ledger.PortfolioID `json:"portfolio"`
	Asset     nft.ID             `json:"asset,string"`
	Amount    uint64             `json:"amount,string"`
}

// Buy - purchase one listed asset attaching Amount
func (t *Trade) Buy(arguments *TradeBuyArguments, reply *TradeBuyReply) error {
	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	t.log.Infof("Trade.Buy: %+v", arguments)

	portfolio, err := trade.Buy(arguments.Caller, arguments.Asset, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Portfolio = portfolio
	reply.Asset = arguments.Asset
	reply.Amount = arguments.Amount
	return nil
}
