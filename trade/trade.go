// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/market"
	"github.com/nftszn/traderd/messagebus"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/sale"
	"github.com/nftszn/traderd/storage"
)

// globals
var globalData struct {
	sync.RWMutex
	log        *logger.L
	service    ledger.Service
	collection nft.Collection

	// set once during initialise
	initialised bool
}

// Initialise - connect the orchestrator to the external ledger
func Initialise(service ledger.Service, collection nft.Collection) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("trade")
	globalData.log.Info("starting…")

	globalData.service = service
	globalData.collection = collection

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the orchestrator
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Buy - purchase one listed asset
//
// amount must cover the listed price; any excess is forwarded to the
// seller in full, not refunded. The asset leg and the payment leg are
// submitted as one settlement, so a failed payment also leaves the
// asset with the seller and the listing intact.
func Buy(caller account.AccountID, assetID nft.ID, amount uint64) (ledger.PortfolioID, error) {

	// read the venue before opening the transaction: Initialize and
	// Close hold the market lock while inside a transaction, so the
	// venue must never be read the other way around
	venue, ok := market.Venue()
	if !ok {
		return ledger.PortfolioID{}, fault.NotInitialised
	}

	trx := storage.TransactionBegin()
	defer trx.Abort()

	if err := mode.EnsureReady(); nil != err {
		return ledger.PortfolioID{}, err
	}

	// take the listing
	listing, err := sale.FetchListing(trx, assetID)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	if nil == listing {
		return ledger.PortfolioID{}, fault.NotForSale
	}
	trx.Delete(storage.Pool.Listings, assetID.Key())

	seller, err := custody.FetchPortfolio(trx, listing.Seller)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	if nil == seller {
		return ledger.PortfolioID{}, fault.MissingPortfolio
	}

	if amount < listing.Price {
		return ledger.PortfolioID{}, fault.TransferredValueTooLow
	}

	buyerIdentity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	buyer, err := custody.FetchPortfolio(trx, buyerIdentity)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	if nil == buyer {
		return ledger.PortfolioID{}, fault.NoPortfolio
	}

	if err := seller.Remove(assetID); nil != err {
		return ledger.PortfolioID{}, err
	}
	seller.Store(trx)

	legs := []ledger.Leg{
		ledger.NonFungibleLeg(seller.ID, buyer.ID, globalData.collection, []nft.ID{assetID}),
		ledger.PaymentLeg(caller, listing.Payout, amount),
	}
	parties := []ledger.PortfolioID{seller.ID, buyer.ID}
	err = globalData.service.ExecuteSettlement(venue, legs, parties)
	if nil != err {
		if ledger.IsTransferError(err) {
			globalData.log.Warnf("payment failed: asset: %d  buyer: %s  error: %s", assetID, buyer.ID, err)
			return ledger.PortfolioID{}, fault.FailedToPaySeller
		}
		return ledger.PortfolioID{}, err
	}

	if err := trx.Commit(); nil != err {
		return ledger.PortfolioID{}, err
	}

	globalData.log.Infof("sold: %d  price: %d  paid: %d  buyer: %s", assetID, listing.Price, amount, buyer.ID)
	messagebus.Send(messagebus.NFTSold{
		Portfolio: buyer.ID,
		Asset:     assetID,
		Amount:    amount,
	})
	return buyer.ID, nil
}
