// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package local_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/ledger/local"
	"github.com/nftszn/traderd/nft"
)

var testCollection = mustCollection("NFTSZN2024")

func mustCollection(s string) nft.Collection {
	collection, err := nft.CollectionFromString(s)
	if nil != err {
		panic(err)
	}
	return collection
}

func makeIdentity(seed byte) account.IdentityID {
	var id account.IdentityID
	id[0] = seed
	return id
}

func makeAccount(seed byte) account.AccountID {
	var id account.AccountID
	id[0] = seed
	return id
}

func TestAuthorizationSingleUse(t *testing.T) {
	l := local.New()
	identity := makeIdentity(1)

	authID := l.IssueAuthorization(identity, 1, time.Minute)

	portfolio, err := l.AcceptPortfolioCustody(authID, 1)
	assert.NoError(t, err, "accept error")
	assert.Equal(t, identity, portfolio.Identity, "wrong identity")
	assert.True(t, l.HasCustody(portfolio), "custody not recorded")

	// a consumed authorization cannot be used again
	_, err = l.AcceptPortfolioCustody(authID, 1)
	assert.Equal(t, fault.InvalidPortfolioAuthorization, err, "expected consumed authorization to fail")
}

func TestAuthorizationExpiry(t *testing.T) {
	l := local.New()

	authID := l.IssueAuthorization(makeIdentity(1), 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, err := l.AcceptPortfolioCustody(authID, 1)
	assert.Equal(t, fault.InvalidPortfolioAuthorization, err, "expected expired authorization to fail")
}

func TestAuthorizationWrongPortfolio(t *testing.T) {
	l := local.New()

	authID := l.IssueAuthorization(makeIdentity(1), 1, time.Minute)

	_, err := l.AcceptPortfolioCustody(authID, 2)
	assert.Equal(t, fault.InvalidPortfolioAuthorization, err, "expected mismatched reference to fail")
}

func TestSettlementAllOrNothing(t *testing.T) {
	l := local.New()

	seller := ledger.PortfolioID{Identity: makeIdentity(1), Number: 1}
	buyer := ledger.PortfolioID{Identity: makeIdentity(2), Number: 1}
	sellerAccount := makeAccount(1)
	buyerAccount := makeAccount(2)

	authID := l.IssueAuthorization(seller.Identity, 1, time.Minute)
	_, err := l.AcceptPortfolioCustody(authID, 1)
	assert.NoError(t, err, "accept error")

	l.Mint(testCollection, 7, seller)
	l.SetBalance(buyerAccount, 50)

	venue, err := l.CreateVenue("test venue")
	assert.NoError(t, err, "venue error")

	legs := []ledger.Leg{
		ledger.NonFungibleLeg(seller, buyer, testCollection, []nft.ID{7}),
		ledger.PaymentLeg(buyerAccount, sellerAccount, 100), // exceeds balance
	}

	err = l.ExecuteSettlement(venue, legs, []ledger.PortfolioID{seller, buyer})
	assert.True(t, ledger.IsTransferError(err), "expected a transfer error, got: %v", err)

	// the asset leg must not have been applied
	owner, ok, err := l.QueryAssetOwner(testCollection, 7)
	assert.NoError(t, err, "owner query error")
	assert.True(t, ok, "asset vanished")
	assert.Equal(t, seller, owner, "asset moved despite failed payment leg")
	assert.Equal(t, uint64(50), l.Balance(buyerAccount), "balance changed despite failed settlement")
}

func TestSettlementSuccess(t *testing.T) {
	l := local.New()

	seller := ledger.PortfolioID{Identity: makeIdentity(1), Number: 1}
	buyer := ledger.PortfolioID{Identity: makeIdentity(2), Number: 1}
	sellerAccount := makeAccount(1)
	buyerAccount := makeAccount(2)

	authID := l.IssueAuthorization(seller.Identity, 1, time.Minute)
	_, err := l.AcceptPortfolioCustody(authID, 1)
	assert.NoError(t, err, "accept error")

	l.Mint(testCollection, 7, seller)
	l.SetBalance(buyerAccount, 150)

	venue, err := l.CreateVenue("test venue")
	assert.NoError(t, err, "venue error")

	legs := []ledger.Leg{
		ledger.NonFungibleLeg(seller, buyer, testCollection, []nft.ID{7}),
		ledger.PaymentLeg(buyerAccount, sellerAccount, 150),
	}

	err = l.ExecuteSettlement(venue, legs, []ledger.PortfolioID{seller, buyer})
	assert.NoError(t, err, "settlement error")

	owner, ok, err := l.QueryAssetOwner(testCollection, 7)
	assert.NoError(t, err, "owner query error")
	assert.True(t, ok, "asset vanished")
	assert.Equal(t, buyer, owner, "asset did not reach the buyer")
	assert.Equal(t, uint64(0), l.Balance(buyerAccount), "buyer balance wrong")
	assert.Equal(t, uint64(150), l.Balance(sellerAccount), "seller balance wrong")
}

func TestMoveAssetsRequiresCustody(t *testing.T) {
	l := local.New()

	from := ledger.PortfolioID{Identity: makeIdentity(1), Number: 1}
	to := ledger.PortfolioID{Identity: makeIdentity(1), Number: 0}
	l.Mint(testCollection, 3, from)

	err := l.MoveAssets(from, to, testCollection, []nft.ID{3})
	assert.Equal(t, local.ErrNotCustodian, err, "expected custody check to fail")
}
