// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - interface to the external asset custody and
// settlement service
//
// The marketplace only orchestrates calls into this service and treats
// every outcome as an atomic black-box result.  Custody, settlement
// execution and identity resolution all live behind this interface;
// nothing in the core talks to the external system directly.
package ledger
