// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/sale"
)

// Sale - sale ledger RPC
type Sale struct {
	log     *logger.L
	limiter *rate.Limiter
}

const maximumListCount = 100

// SaleOffer - one entry of a Sale.List batch; a missing price is an
// explicit delisting
type SaleOffer struct {
	Asset nft.ID  `json:"asset,string"`
	Price *uint64 `json:"price,omitempty"`
}

// SaleListArguments - arguments for Sale.List
type SaleListArguments struct {
	Caller account.AccountID `json:"caller"`
	Offers []SaleOffer       `json:"offers"`
}

// SaleListReply - result of Sale.List
type SaleListReply struct {
	Listed   int `json:"listed"`
	Delisted int `json:"delisted"`
}

// List - offer or delist a batch of assets
func (s *Sale) List(arguments *SaleListArguments, reply *SaleListReply) error {
	if err := rateLimitN(s.limiter, len(arguments.Offers), maximumListCount); nil != err {
		return err
	}
	s.log.Infof("Sale.List: %+v", arguments)

	offers := make([]sale.Offer, len(arguments.Offers))
	for i, offer := range arguments.Offers {
		offers[i] = sale.Offer{
			AssetID: offer.Asset,
			Price:   offer.Price,
		}
		if nil == offer.Price {
			reply.Delisted += 1
		} else {
			reply.Listed += 1
		}
	}

	return sale.ListForSale(arguments.Caller, offers)
}

// SaleGetArguments - arguments for Sale.Get
type SaleGetArguments struct {
	Asset nft.ID `json:"asset,string"`
}

// SaleGetReply - result of Sale.Get
type SaleGetReply struct {
	ForSale bool               `json:"forSale"`
	Payout  account.AccountID  `json:"payout,omitempty"`
	Seller  account.IdentityID `json:"seller,omitempty"`
	Price   uint64             `json:"price,omitempty"`
}

// Get - the current listing of one asset
func (s *Sale) Get(arguments *SaleGetArguments, reply *SaleGetReply) error {
	if err := rateLimit(s.limiter); nil != err {
		return err
	}

	listing, err := sale.Get(arguments.Asset)
	if nil != err {
		return err
	}
	if nil == listing {
		reply.ForSale = false
		return nil
	}

	reply.ForSale = true
	reply.Payout = listing.Payout
	reply.Seller = listing.Seller
	reply.Price = listing.Price
	return nil
}

// SaleAllListedArguments - no arguments
type SaleAllListedArguments struct {
}

// SaleAllListedReply - result of Sale.AllListed
type SaleAllListedReply struct {
	Assets []nft.ID `json:"assets"`
}

// AllListed - every asset currently for sale, ascending
func (s *Sale) AllListed(arguments *SaleAllListedArguments, reply *SaleAllListedReply) error {
	if err := rateLimit(s.limiter); nil != err {
		return err
	}

	reply.Assets = sale.AllListed()
	return nil
}
