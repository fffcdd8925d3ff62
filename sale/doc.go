// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sale - the sale ledger
//
// one listing per asset id, existing only while the asset is offered
// for sale; a listing and its asset's membership in the seller's
// tracked set are always written in the same transaction
package sale
