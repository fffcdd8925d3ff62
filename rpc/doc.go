// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC interface of the marketplace daemon
//
// services are registered on a net/rpc server served with the jsonrpc
// codec over TLS connections accepted by the multi listener; every
// service call is rate limited
package rpc
