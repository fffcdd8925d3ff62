// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package local - deterministic in-memory custody and settlement
// service
//
// Backs the daemon's local mode and the package tests.  Behaves like
// the real external ledger at the interface: every call either fully
// happens or fails without effect.
package local

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
)

// DefaultAuthorizationExpiry - lifetime of an unused custody
// authorization
const DefaultAuthorizationExpiry = 15 * time.Minute

// errors returned by the local service
var (
	ErrUnknownAccount   = fault.NotFoundError("account has no identity")
	ErrUnknownVenue     = fault.NotFoundError("venue does not exist")
	ErrUnknownAsset     = fault.NotFoundError("asset does not exist")
	ErrNotCustodian     = fault.InvalidError("portfolio is not under custody")
	ErrWrongSender      = fault.InvalidError("asset is not held by the sending portfolio")
	ErrInsufficientFund = ledger.TransferError("insufficient funds")
)

type assetKey struct {
	collection nft.Collection
	id         nft.ID
}

type authorization struct {
	identity account.IdentityID
	ref      ledger.PortfolioRef
}

// Ledger - in-memory asset custody and settlement service
type Ledger struct {
	sync.Mutex

	auths      *cache.Cache // single-use custody authorizations
	nextAuth   uint64
	nextVenue  uint64
	venues     map[ledger.VenueID]string
	owners     map[assetKey]ledger.PortfolioID
	balances   map[account.AccountID]uint64
	identities map[account.AccountID]account.IdentityID
	custody    map[ledger.PortfolioID]struct{}
}

// New - create an empty ledger
func New() *Ledger {
	return &Ledger{
		auths:      cache.New(DefaultAuthorizationExpiry, 2*DefaultAuthorizationExpiry),
		venues:     make(map[ledger.VenueID]string),
		owners:     make(map[assetKey]ledger.PortfolioID),
		balances:   make(map[account.AccountID]uint64),
		identities: make(map[account.AccountID]account.IdentityID),
		custody:    make(map[ledger.PortfolioID]struct{}),
	}
}

// test and local-mode fixture helpers
// -----------------------------------

// RegisterAccount - bind a payment account to an identity
func (l *Ledger) RegisterAccount(acct account.AccountID, identity account.IdentityID) {
	l.Lock()
	defer l.Unlock()
	l.identities[acct] = identity
}

// IssueAuthorization - issue a single-use custody authorization for
// one portfolio of an identity; expires after expiry
func (l *Ledger) IssueAuthorization(identity account.IdentityID, ref ledger.PortfolioRef, expiry time.Duration) uint64 {
	l.Lock()
	defer l.Unlock()

	l.nextAuth += 1
	l.auths.Set(authKey(l.nextAuth), authorization{
		identity: identity,
		ref:      ref,
	}, expiry)
	return l.nextAuth
}

// Mint - place an asset into a portfolio
func (l *Ledger) Mint(collection nft.Collection, id nft.ID, portfolio ledger.PortfolioID) {
	l.Lock()
	defer l.Unlock()
	l.owners[assetKey{collection, id}] = portfolio
}

// SetBalance - set an account balance
func (l *Ledger) SetBalance(acct account.AccountID, amount uint64) {
	l.Lock()
	defer l.Unlock()
	l.balances[acct] = amount
}

// Balance - current account balance
func (l *Ledger) Balance(acct account.AccountID) uint64 {
	l.Lock()
	defer l.Unlock()
	return l.balances[acct]
}

// HasCustody - check custody of a portfolio
func (l *Ledger) HasCustody(portfolio ledger.PortfolioID) bool {
	l.Lock()
	defer l.Unlock()
	_, ok := l.custody[portfolio]
	return ok
}

// ledger.Service implementation
// -----------------------------

// CreateVenue - register a settlement venue
func (l *Ledger) CreateVenue(description string) (ledger.VenueID, error) {
	l.Lock()
	defer l.Unlock()

	l.nextVenue += 1
	venue := ledger.VenueID(l.nextVenue)
	l.venues[venue] = description
	return venue, nil
}

// AcceptPortfolioCustody - consume a single-use authorization
func (l *Ledger) AcceptPortfolioCustody(authID uint64, ref ledger.PortfolioRef) (ledger.PortfolioID, error) {
	l.Lock()
	defer l.Unlock()

	item, ok := l.auths.Get(authKey(authID))
	if !ok {
		return ledger.PortfolioID{}, fault.InvalidPortfolioAuthorization
	}
	auth := item.(authorization)
	if auth.ref != ref {
		return ledger.PortfolioID{}, fault.InvalidPortfolioAuthorization
	}

	// single use
	l.auths.Delete(authKey(authID))

	portfolio := ledger.PortfolioID{
		Identity: auth.identity,
		Number:   auth.ref,
	}
	l.custody[portfolio] = struct{}{}
	return portfolio, nil
}

// QuitPortfolioCustody - return custody to the owner
func (l *Ledger) QuitPortfolioCustody(portfolio ledger.PortfolioID) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.custody[portfolio]; !ok {
		return ErrNotCustodian
	}
	delete(l.custody, portfolio)
	return nil
}

// MoveAssets - relocate assets between portfolios of one owner
func (l *Ledger) MoveAssets(from ledger.PortfolioID, to ledger.PortfolioID, collection nft.Collection, assets []nft.ID) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.custody[from]; !ok {
		return ErrNotCustodian
	}

	// validate before any mutation
	for _, id := range assets {
		owner, ok := l.owners[assetKey{collection, id}]
		if !ok {
			return ErrUnknownAsset
		}
		if owner != from {
			return ErrWrongSender
		}
	}

	for _, id := range assets {
		l.owners[assetKey{collection, id}] = to
	}
	return nil
}

// ExecuteSettlement - atomic multi-leg exchange
func (l *Ledger) ExecuteSettlement(venue ledger.VenueID, legs []ledger.Leg, parties []ledger.PortfolioID) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.venues[venue]; !ok {
		return ErrUnknownVenue
	}

	// validate every leg; any failure aborts all legs
	for _, leg := range legs {
		switch leg.Kind {
		case ledger.LegNonFungible:
			if _, ok := l.custody[leg.Sender]; !ok {
				return ErrNotCustodian
			}
			for _, id := range leg.Assets {
				owner, ok := l.owners[assetKey{leg.Collection, id}]
				if !ok {
					return ErrUnknownAsset
				}
				if owner != leg.Sender {
					return ErrWrongSender
				}
			}
		case ledger.LegPayment:
			if l.balances[leg.From] < leg.Amount {
				return ErrInsufficientFund
			}
		default:
			return fault.InvalidError(fmt.Sprintf("unsupported settlement leg kind: %d", leg.Kind))
		}
	}

	// apply all legs
	for _, leg := range legs {
		switch leg.Kind {
		case ledger.LegNonFungible:
			for _, id := range leg.Assets {
				l.owners[assetKey{leg.Collection, id}] = leg.Receiver
			}
		case ledger.LegPayment:
			l.balances[leg.From] -= leg.Amount
			l.balances[leg.To] += leg.Amount
		}
	}
	return nil
}

// QueryAssetOwner - current holder of an asset
func (l *Ledger) QueryAssetOwner(collection nft.Collection, assetID nft.ID) (ledger.PortfolioID, bool, error) {
	l.Lock()
	defer l.Unlock()

	owner, ok := l.owners[assetKey{collection, assetID}]
	return owner, ok, nil
}

// Pay - native value transfer
func (l *Ledger) Pay(from account.AccountID, to account.AccountID, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	if l.balances[from] < amount {
		return ErrInsufficientFund
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// AccountIdentity - resolve an account to its holder
func (l *Ledger) AccountIdentity(acct account.AccountID) (account.IdentityID, error) {
	l.Lock()
	defer l.Unlock()

	identity, ok := l.identities[acct]
	if !ok {
		return account.IdentityID{}, ErrUnknownAccount
	}
	return identity, nil
}

func authKey(authID uint64) string {
	return fmt.Sprintf("%d", authID)
}
