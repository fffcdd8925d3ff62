// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/messagebus"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/storage"
)

// Offer - one entry of a list-for-sale batch
//
// nil Price is an explicit delisting
type Offer struct {
	AssetID nft.ID
	Price   *uint64
}

// globals
var globalData struct {
	sync.RWMutex
	log        *logger.L
	service    ledger.Service
	collection nft.Collection

	// set once during initialise
	initialised bool
}

// Initialise - connect the sale ledger to the external ledger
func Initialise(service ledger.Service, collection nft.Collection) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("sale")
	globalData.log.Info("starting…")

	globalData.service = service
	globalData.collection = collection

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the sale ledger
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

// ListForSale - offer or delist a batch of assets
//
// every offered asset, delistings included, must currently sit in the
// caller's custodial portfolio on the external ledger; one failed
// ownership check rejects the whole batch with no mutation
func ListForSale(caller account.AccountID, offers []Offer) error {
	if 0 == len(offers) {
		return fault.MissingParameters
	}

	trx := storage.TransactionBegin()
	defer trx.Abort()

	if err := mode.EnsureReady(); nil != err {
		return err
	}

	identity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return err
	}

	portfolio, err := custody.FetchPortfolio(trx, identity)
	if nil != err {
		return err
	}
	if nil == portfolio {
		return fault.NoPortfolio
	}

	// phase one: verify current ownership of the whole batch
	for _, offer := range offers {
		owner, ok, err := globalData.service.QueryAssetOwner(globalData.collection, offer.AssetID)
		if nil != err {
			return err
		}
		if !ok || owner != portfolio.ID {
			return fault.NotInPortfolio
		}
	}

	// phase two: stage the mutations
	listed := make([]messagebus.PricedNFT, 0, len(offers))
	delisted := make([]nft.ID, 0)
	for _, offer := range offers {
		if nil == offer.Price {
			trx.Delete(storage.Pool.Listings, offer.AssetID.Key())
			if portfolio.Has(offer.AssetID) {
				_ = portfolio.Remove(offer.AssetID)
			}
			delisted = append(delisted, offer.AssetID)
			continue
		}
		listing := &Listing{
			Payout: caller,
			Seller: identity,
			Price:  *offer.Price,
		}
		listing.Store(trx, offer.AssetID)
		portfolio.Add(offer.AssetID)
		listed = append(listed, messagebus.PricedNFT{
			Asset: offer.AssetID,
			Price: *offer.Price,
		})
	}
	portfolio.Store(trx)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("listed: %d  delisted: %d  portfolio: %s", len(listed), len(delisted), portfolio.ID)
	messagebus.Send(messagebus.NFTsForSale{
		Portfolio: portfolio.ID,
		Listed:    listed,
		Delisted:  delisted,
	})
	return nil
}

// Get - the current listing of an asset, nil when not for sale
func Get(assetID nft.ID) (*Listing, error) {
	trx := storage.TransactionBegin()
	defer trx.Abort()

	return FetchListing(trx, assetID)
}

// AllListed - every asset id currently for sale, ascending
func AllListed() []nft.ID {
	trx := storage.TransactionBegin()
	defer trx.Abort()

	ids := make([]nft.ID, 0, 16)
	trx.Range(storage.Pool.Listings, func(key []byte, value []byte) bool {
		id, ok := nft.IDFromKey(key)
		if !ok {
			globalData.log.Errorf("skipping bad listing key: %x", key)
			return true
		}
		ids = append(ids, id)
		return true
	})
	return ids
}
