// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - principal identifiers
//
// An AccountID names a payment account on the external ledger, an
// IdentityID names the account-holder behind any number of payment
// accounts.  Both are opaque 32 byte values displayed in base58.
package account

import (
	"github.com/mr-tron/base58"

	"github.com/nftszn/traderd/fault"
)

// IDLength - number of bytes in an account or identity id
const IDLength = 32

// AccountID - a payment account on the external ledger
type AccountID [IDLength]byte

// IdentityID - stable id of an account-holder, independent of any
// single payment account
type IdentityID [IDLength]byte

// errors for id parsing
var (
	ErrInvalidIDLength   = fault.InvalidError("id length is invalid")
	ErrInvalidIDEncoding = fault.InvalidError("id base58 encoding is invalid")
)

// AccountIDFromBase58 - parse the text form of an account id
func AccountIDFromBase58(s string) (AccountID, error) {
	var id AccountID
	err := decodeID(s, id[:])
	return id, err
}

// IdentityIDFromBase58 - parse the text form of an identity id
func IdentityIDFromBase58(s string) (IdentityID, error) {
	var id IdentityID
	err := decodeID(s, id[:])
	return id, err
}

func decodeID(s string, out []byte) error {
	buffer, err := base58.Decode(s)
	if nil != err {
		return ErrInvalidIDEncoding
	}
	if IDLength != len(buffer) {
		return ErrInvalidIDLength
	}
	copy(out, buffer)
	return nil
}

// Bytes - raw id bytes
func (id AccountID) Bytes() []byte { return id[:] }

// Bytes - raw id bytes
func (id IdentityID) Bytes() []byte { return id[:] }

func (id AccountID) String() string { return base58.Encode(id[:]) }

func (id IdentityID) String() string { return base58.Encode(id[:]) }

// MarshalText - base58 for JSON
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - base58 from JSON
func (id *AccountID) UnmarshalText(s []byte) error {
	return decodeID(string(s), id[:])
}

// MarshalText - base58 for JSON
func (id IdentityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - base58 from JSON
func (id *IdentityID) UnmarshalText(s []byte) error {
	return decodeID(string(s), id[:])
}
