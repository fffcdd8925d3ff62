// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/messagebus"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
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

// Initialise - connect the registry to the external ledger
func Initialise(service ledger.Service, collection nft.Collection) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("custody")
	globalData.log.Info("starting…")

	globalData.service = service
	globalData.collection = collection

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the registry
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

// Accept - take custody of one portfolio for the caller's identity
//
// the single-use authorization is only consumed after the registry
// verified the caller does not already have a portfolio
func Accept(caller account.AccountID, authID uint64, ref ledger.PortfolioRef) (ledger.PortfolioID, error) {
	trx := storage.TransactionBegin()
	defer trx.Abort()

	if err := mode.EnsureReady(); nil != err {
		return ledger.PortfolioID{}, err
	}

	identity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return ledger.PortfolioID{}, err
	}

	existing, err := FetchPortfolio(trx, identity)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	if nil != existing {
		return ledger.PortfolioID{}, fault.AlreadyHavePortfolio
	}

	portfolioID, err := globalData.service.AcceptPortfolioCustody(authID, ref)
	if nil != err {
		return ledger.PortfolioID{}, err
	}

	// the authorization must cover a portfolio of the caller; release
	// custody again if it named someone else
	if portfolioID.Identity != identity {
		globalData.log.Warnf("authorization %d names: %s  caller is: %s", authID, portfolioID.Identity, identity)
		if err := globalData.service.QuitPortfolioCustody(portfolioID); nil != err {
			globalData.log.Errorf("cannot release mismatched portfolio: %s  error: %s", portfolioID, err)
		}
		return ledger.PortfolioID{}, fault.InvalidPortfolioAuthorization
	}

	portfolio := &Portfolio{
		ID:     portfolioID,
		Listed: make(map[nft.ID]struct{}),
	}
	portfolio.Store(trx)

	if err := trx.Commit(); nil != err {
		return ledger.PortfolioID{}, err
	}

	globalData.log.Infof("custody accepted: %s", portfolioID)
	messagebus.Send(messagebus.PortfolioAdded{Portfolio: portfolioID})
	return portfolioID, nil
}

// Return - give custody of the caller's portfolio back to them
//
// clears every listing still referencing the portfolio; permitted
// while Initialized or Closed
func Return(caller account.AccountID) (ledger.PortfolioID, error) {
	trx := storage.TransactionBegin()
	defer trx.Abort()

	if err := mode.EnsureWithdraw(); nil != err {
		return ledger.PortfolioID{}, err
	}

	identity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return ledger.PortfolioID{}, err
	}

	portfolio, err := FetchPortfolio(trx, identity)
	if nil != err {
		return ledger.PortfolioID{}, err
	}
	if nil == portfolio {
		return ledger.PortfolioID{}, fault.NoPortfolio
	}

	if err := globalData.service.QuitPortfolioCustody(portfolio.ID); nil != err {
		return ledger.PortfolioID{}, err
	}

	for _, id := range portfolio.ListedIDs() {
		trx.Delete(storage.Pool.Listings, id.Key())
	}
	deletePortfolio(trx, identity)

	if err := trx.Commit(); nil != err {
		return ledger.PortfolioID{}, err
	}

	globalData.log.Infof("custody returned: %s", portfolio.ID)
	messagebus.Send(messagebus.PortfolioRemoved{Portfolio: portfolio.ID})
	return portfolio.ID, nil
}

// Withdraw - move tracked assets out of the custodial portfolio
//
// every asset id must currently be tracked for sale; the tracked set
// only ever contains assets that passed through list-for-sale, so a
// deposited but never listed asset is recovered with Return instead.
// Permitted while Initialized or Closed.
func Withdraw(caller account.AccountID, assetIDs []nft.ID, dest ledger.PortfolioRef) error {
	if 0 == len(assetIDs) {
		return fault.MissingParameters
	}

	trx := storage.TransactionBegin()
	defer trx.Abort()

	if err := mode.EnsureWithdraw(); nil != err {
		return err
	}

	identity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return err
	}

	portfolio, err := FetchPortfolio(trx, identity)
	if nil != err {
		return err
	}
	if nil == portfolio {
		return fault.NoPortfolio
	}

	for _, id := range assetIDs {
		if err := portfolio.Remove(id); nil != err {
			return err
		}
		trx.Delete(storage.Pool.Listings, id.Key())
	}
	portfolio.Store(trx)

	destination := ledger.PortfolioID{
		Identity: identity,
		Number:   dest,
	}
	err = globalData.service.MoveAssets(portfolio.ID, destination, globalData.collection, assetIDs)
	if nil != err {
		return err
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("withdrawn: %v from: %s", assetIDs, portfolio.ID)
	messagebus.Send(messagebus.WithdrawnNFTs{
		Portfolio: portfolio.ID,
		Assets:    assetIDs,
	})
	return nil
}

// Info - the caller's portfolio record
func Info(caller account.AccountID) (*Portfolio, error) {
	trx := storage.TransactionBegin()
	defer trx.Abort()

	identity, err := globalData.service.AccountIdentity(caller)
	if nil != err {
		return nil, err
	}

	portfolio, err := FetchPortfolio(trx, identity)
	if nil != err {
		return nil, err
	}
	if nil == portfolio {
		return nil, fault.NoPortfolio
	}
	return portfolio, nil
}
