// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - registry of delegated portfolios
//
// Maps an identity to its single custodial portfolio record: the
// external portfolio reference plus the set of asset ids currently
// tracked for sale.  Custody is accepted through a single-use
// authorization issued on the external ledger and returned on demand,
// even after the contract closed.
package custody
