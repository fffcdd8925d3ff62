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
	"github.com/nftszn/traderd/market"
)

// Trader - administrative lifecycle RPC
type Trader struct {
	log     *logger.L
	limiter *rate.Limiter
}

// TraderInitializeArguments - arguments for Trader.Initialize
type TraderInitializeArguments struct {
	Caller account.AccountID `json:"caller"`
}

// TraderInitializeReply - result of Trader.Initialize
type TraderInitializeReply struct {
	Venue ledger.VenueID `json:"venue"`
	State string         `json:"state"`
}

// Initialize - open the marketplace; admin only
func (trader *Trader) Initialize(arguments *TraderInitializeArguments, reply *TraderInitializeReply) error {
	if err := rateLimit(trader.limiter); nil != err {
		return err
	}
	trader.log.Infof("Trader.Initialize: %+v", arguments)

	venue, err := market.Initialize(arguments.Caller)
	if nil != err {
		return err
	}

	reply.Venue = venue
	reply.State = market.Status().String()
	return nil
}

// TraderCloseArguments - arguments for Trader.Close
type TraderCloseArguments struct {
	Caller account.AccountID `json:"caller"`
}

// TraderCloseReply - result of Trader.Close
type TraderCloseReply struct {
	State string `json:"state"`
}

// Close - close the marketplace permanently; admin only
func (trader *Trader) Close(arguments *TraderCloseArguments, reply *TraderCloseReply) error {
	if err := rateLimit(trader.limiter); nil != err {
		return err
	}
	trader.log.Infof("Trader.Close: %+v", arguments)

	if err := market.Close(arguments.Caller); nil != err {
		return err
	}

	reply.State = market.Status().String()
	return nil
}

// TraderStatusArguments - no arguments
type TraderStatusArguments struct {
}

// TraderStatusReply - result of Trader.Status
type TraderStatusReply struct {
	State   string         `json:"state"`
	Venue   ledger.VenueID `json:"venue"`
	HasOpen bool           `json:"hasOpened"`
	Version string         `json:"version"`
	Uptime  string         `json:"uptime"`
}

// Status - lifecycle state, venue and daemon information
func (trader *Trader) Status(arguments *TraderStatusArguments, reply *TraderStatusReply) error {
	if err := rateLimit(trader.limiter); nil != err {
		return err
	}

	reply.State = market.Status().String()
	venue, ok := market.Venue()
	reply.Venue = venue
	reply.HasOpen = ok
	reply.Version = globalData.version
	reply.Uptime = uptime().String()
	return nil
}
