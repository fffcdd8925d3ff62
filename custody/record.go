// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"sort"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/storage"
	"github.com/nftszn/traderd/util"
)

// Portfolio - one custodial portfolio record
//
// Listed tracks the asset ids that passed through list-for-sale and
// were verified in custody at that time; it is not re-checked against
// the external ledger afterwards.
type Portfolio struct {
	ID     ledger.PortfolioID
	Listed map[nft.ID]struct{}
}

// record unpack error
var ErrCorruptPortfolioRecord = fault.ProcessError("corrupt portfolio record")

// Has - check an asset id is tracked
func (p *Portfolio) Has(id nft.ID) bool {
	_, ok := p.Listed[id]
	return ok
}

// Add - track an asset id
func (p *Portfolio) Add(id nft.ID) {
	p.Listed[id] = struct{}{}
}

// Remove - stop tracking an asset id
func (p *Portfolio) Remove(id nft.ID) error {
	if _, ok := p.Listed[id]; !ok {
		return fault.NotInPortfolio
	}
	delete(p.Listed, id)
	return nil
}

// ListedIDs - tracked asset ids in ascending order
func (p *Portfolio) ListedIDs() []nft.ID {
	ids := make([]nft.ID, 0, len(p.Listed))
	for id := range p.Listed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i int, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Pack - serialise the record
//
// layout: portfolio number | asset count | ascending asset ids
// all fields Varint64; the identity lives in the database key
func (p *Portfolio) Pack() []byte {
	buffer := util.ToVarint64(uint64(p.ID.Number))
	buffer = append(buffer, util.ToVarint64(uint64(len(p.Listed)))...)
	for _, id := range p.ListedIDs() {
		buffer = append(buffer, util.ToVarint64(uint64(id))...)
	}
	return buffer
}

// UnpackPortfolio - deserialise a record stored under identity
func UnpackPortfolio(identity account.IdentityID, buffer []byte) (*Portfolio, error) {
	number, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, ErrCorruptPortfolioRecord
	}
	buffer = buffer[n:]

	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, ErrCorruptPortfolioRecord
	}
	buffer = buffer[n:]

	listed := make(map[nft.ID]struct{}, count)
	for i := uint64(0); i < count; i += 1 {
		id, n := util.FromVarint64(buffer)
		if 0 == n {
			return nil, ErrCorruptPortfolioRecord
		}
		buffer = buffer[n:]
		listed[nft.ID(id)] = struct{}{}
	}
	if 0 != len(buffer) {
		return nil, ErrCorruptPortfolioRecord
	}

	return &Portfolio{
		ID: ledger.PortfolioID{
			Identity: identity,
			Number:   ledger.PortfolioRef(number),
		},
		Listed: listed,
	}, nil
}

// FetchPortfolio - read a record inside a transaction
//
// nil result without error means no record exists
func FetchPortfolio(trx storage.Transaction, identity account.IdentityID) (*Portfolio, error) {
	buffer := trx.Get(storage.Pool.Portfolios, identity.Bytes())
	if nil == buffer {
		return nil, nil
	}
	return UnpackPortfolio(identity, buffer)
}

// Store - stage the record in a transaction
func (p *Portfolio) Store(trx storage.Transaction) {
	trx.Put(storage.Pool.Portfolios, p.ID.Identity.Bytes(), p.Pack())
}

// deletePortfolio - stage removal of a record
func deletePortfolio(trx storage.Transaction, identity account.IdentityID) {
	trx.Delete(storage.Pool.Portfolios, identity.Bytes())
}
