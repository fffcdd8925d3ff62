// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - administrative lifecycle of the marketplace
//
// opening creates the settlement venue on the external ledger and
// moves the contract to Initialized; closing is permanent and leaves
// only recovery operations available
package market
