// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the marketplace state in a key-value store
//
// Maintains a single LevelDB database with prefix-separated pools:
//
// Portfolios:
//   P<identity>        - packed custodial portfolio record
// Listings:
//   L<asset id BE64>   - packed sale listing record
// Contract:
//   CS                 - contract lifecycle state (one byte)
//   CV                 - settlement venue id (varint64)
//
// All writes go through a Transaction.  A transaction stages its
// mutations in a batch plus a read-your-writes overlay cache; nothing
// reaches the database until Commit, and Abort discards the lot.  Since
// Begin blocks while another transaction is open, the transaction is
// also the serialisation boundary: public marketplace operations run
// one at a time, and a failing operation leaves the persisted state
// exactly as it found it.
package storage
