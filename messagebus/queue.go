// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
)

// internal constants
const (
	queueSize = 1000
)

// Event - any of the marketplace event types below
type Event interface{}

// PortfolioAdded - custody of a portfolio was accepted
type PortfolioAdded struct {
	Portfolio ledger.PortfolioID
}

// PortfolioRemoved - custody of a portfolio was returned
type PortfolioRemoved struct {
	Portfolio ledger.PortfolioID
}

// WithdrawnNFTs - assets were moved out of a custodial portfolio
type WithdrawnNFTs struct {
	Portfolio ledger.PortfolioID
	Assets    []nft.ID
}

// PricedNFT - one asset offered at a fixed price
type PricedNFT struct {
	Asset nft.ID
	Price uint64
}

// NFTsForSale - one batched listing update: newly offered assets and
// explicit delistings
type NFTsForSale struct {
	Portfolio ledger.PortfolioID
	Listed    []PricedNFT
	Delisted  []nft.ID
}

// NFTSold - an asset was bought; Amount is the full attached payment
type NFTSold struct {
	Portfolio ledger.PortfolioID // the buyer's portfolio
	Asset     nft.ID
	Amount    uint64
}

// for queueing events
var queue = make(chan Event, queueSize)

// Send - queue an event
func Send(event Event) {
	queue <- event
}

// Chan - channel to read from
func Chan() <-chan Event {
	return queue
}
