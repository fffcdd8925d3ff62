// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nft - non-fungible asset identifiers
//
// Each deployment trades exactly one collection; asset ids are unique
// within that collection.
package nft

import (
	"encoding/binary"

	"github.com/nftszn/traderd/fault"
)

// ID - asset id within the collection
type ID uint64

// CollectionLength - fixed symbol storage size
const CollectionLength = 12

// Collection - zero padded collection symbol
type Collection [CollectionLength]byte

// errors for collection parsing
var (
	ErrInvalidCollectionSymbol = fault.InvalidError("collection symbol is invalid")
)

// Key - big endian database key for an asset id
func (id ID) Key() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// IDFromKey - recover an asset id from its database key
func IDFromKey(key []byte) (ID, bool) {
	if 8 != len(key) {
		return 0, false
	}
	return ID(binary.BigEndian.Uint64(key)), true
}

// CollectionFromString - validate and pad a collection symbol
//
// symbols are 1..12 characters from A..Z and 0..9
func CollectionFromString(s string) (Collection, error) {
	var collection Collection
	if 0 == len(s) || len(s) > CollectionLength {
		return collection, ErrInvalidCollectionSymbol
	}
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return collection, ErrInvalidCollectionSymbol
		}
		collection[i] = c
	}
	return collection, nil
}

func (c Collection) String() string {
	n := 0
	for n < CollectionLength && 0 != c[n] {
		n += 1
	}
	return string(c[:n])
}

// MarshalText - symbol for JSON
func (c Collection) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - symbol from JSON
func (c *Collection) UnmarshalText(s []byte) error {
	collection, err := CollectionFromString(string(s))
	if nil != err {
		return err
	}
	*c = collection
	return nil
}
