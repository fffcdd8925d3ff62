// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

//go:generate mockgen -source=ledger.go -destination=mocks/mock_service.go -package=mocks

import (
	"fmt"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/nft"
)

// VenueID - settlement venue on the external ledger
type VenueID uint64

// PortfolioRef - owner-relative portfolio reference; zero names the
// owner's default portfolio
type PortfolioRef uint64

// PortfolioID - absolute portfolio identifier on the external ledger
type PortfolioID struct {
	Identity account.IdentityID `json:"identity"`
	Number   PortfolioRef       `json:"number"`
}

func (p PortfolioID) String() string {
	return fmt.Sprintf("%s/%d", p.Identity, p.Number)
}

// LegKind - discriminator for settlement legs
type LegKind int

// settlement leg kinds
const (
	LegNonFungible LegKind = iota
	LegPayment
)

// Leg - one atomic movement instruction of a settlement
//
// a non-fungible leg moves assets between portfolios, a payment leg
// moves native value between accounts; the external ledger executes
// all legs of a settlement indivisibly
type Leg struct {
	Kind LegKind

	// non-fungible leg
	Sender     PortfolioID
	Receiver   PortfolioID
	Collection nft.Collection
	Assets     []nft.ID

	// payment leg
	From   account.AccountID
	To     account.AccountID
	Amount uint64
}

// NonFungibleLeg - build an asset movement leg
func NonFungibleLeg(sender PortfolioID, receiver PortfolioID, collection nft.Collection, assets []nft.ID) Leg {
	return Leg{
		Kind:       LegNonFungible,
		Sender:     sender,
		Receiver:   receiver,
		Collection: collection,
		Assets:     assets,
	}
}

// PaymentLeg - build a native value movement leg
func PaymentLeg(from account.AccountID, to account.AccountID, amount uint64) Leg {
	return Leg{
		Kind:   LegPayment,
		From:   from,
		To:     to,
		Amount: amount,
	}
}

// TransferError - failure of a native value transfer or of the payment
// leg of a settlement; distinguishable so the orchestrator can report
// FailedToPaySeller instead of a generic ledger error
type TransferError string

func (e TransferError) Error() string { return string(e) }

// IsTransferError - check for a value transfer failure
func IsTransferError(err error) bool {
	_, ok := err.(TransferError)
	return ok
}

// Service - operations the marketplace consumes from the external
// custody and settlement service
//
// every call is synchronous and atomic from the caller's perspective:
// it either fully happened on the external ledger or not at all
type Service interface {
	// CreateVenue registers the settlement venue used by all later
	// trades; called once during contract initialisation.
	CreateVenue(description string) (VenueID, error)

	// AcceptPortfolioCustody consumes a single-use authorization
	// issued by the portfolio owner and transfers custody of the
	// referenced portfolio to the marketplace.  Fails if the
	// authorization is invalid, expired or already consumed.
	AcceptPortfolioCustody(authID uint64, ref PortfolioRef) (PortfolioID, error)

	// QuitPortfolioCustody returns custody of a portfolio to its
	// owner.
	QuitPortfolioCustody(portfolio PortfolioID) error

	// MoveAssets relocates assets between two portfolios of the same
	// owner; not an exchange, used for withdrawal.
	MoveAssets(from PortfolioID, to PortfolioID, collection nft.Collection, assets []nft.ID) error

	// ExecuteSettlement performs an atomic multi-leg exchange at a
	// venue; any leg failing aborts all legs.  A payment leg failure
	// is reported as a TransferError.
	ExecuteSettlement(venue VenueID, legs []Leg, parties []PortfolioID) error

	// QueryAssetOwner reports the portfolio currently holding an
	// asset; the second result is false when the asset is unknown.
	QueryAssetOwner(collection nft.Collection, assetID nft.ID) (PortfolioID, bool, error)

	// Pay performs a native value transfer between two accounts; a
	// failure is reported as a TransferError.
	Pay(from account.AccountID, to account.AccountID, amount uint64) error

	// AccountIdentity resolves a payment account to the identity of
	// its holder.
	AccountIdentity(acct account.AccountID) (account.IdentityID, error)
}
