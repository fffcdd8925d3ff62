// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/storage"
	"github.com/nftszn/traderd/util"
)

// Listing - one asset offered for sale
//
// Payout receives the buyer's funds; Seller locates the custodial
// portfolio holding the asset
type Listing struct {
	Payout account.AccountID
	Seller account.IdentityID
	Price  uint64
}

// record unpack error
var ErrCorruptListingRecord = fault.ProcessError("corrupt listing record")

// Pack - serialise the record
//
// layout: payout account | seller identity | price Varint64
// the asset id lives in the database key
func (l *Listing) Pack() []byte {
	buffer := make([]byte, 0, 2*account.IDLength+util.Varint64MaximumBytes)
	buffer = append(buffer, l.Payout.Bytes()...)
	buffer = append(buffer, l.Seller.Bytes()...)
	buffer = append(buffer, util.ToVarint64(l.Price)...)
	return buffer
}

// UnpackListing - deserialise a record
func UnpackListing(buffer []byte) (*Listing, error) {
	if len(buffer) <= 2*account.IDLength {
		return nil, ErrCorruptListingRecord
	}

	listing := &Listing{}
	copy(listing.Payout[:], buffer[:account.IDLength])
	copy(listing.Seller[:], buffer[account.IDLength:2*account.IDLength])
	buffer = buffer[2*account.IDLength:]

	price, n := util.FromVarint64(buffer)
	if 0 == n || n != len(buffer) {
		return nil, ErrCorruptListingRecord
	}
	listing.Price = price
	return listing, nil
}

// FetchListing - read a record inside a transaction
//
// nil result without error means the asset is not for sale
func FetchListing(trx storage.Transaction, assetID nft.ID) (*Listing, error) {
	buffer := trx.Get(storage.Pool.Listings, assetID.Key())
	if nil == buffer {
		return nil, nil
	}
	return UnpackListing(buffer)
}

// Store - stage the record in a transaction
func (l *Listing) Store(trx storage.Transaction, assetID nft.ID) {
	trx.Put(storage.Pool.Listings, assetID.Key(), l.Pack())
}
