// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trade - purchase settlement
//
// a buy takes the listing, updates both custodial records and submits
// one atomic two-leg settlement to the external ledger; either the
// asset and the payment both move and the local records commit, or
// nothing changes anywhere
package trade
