// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queue for marketplace events
//
// Events are emitted only after the originating call committed its
// storage transaction; a reader therefore never observes an event for
// state that was rolled back.
package messagebus
