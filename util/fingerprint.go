// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - holds a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - fingerprint a certificate
//
// SHA3-256 of the DER bytes, the same value that clients pin
func Fingerprint(certificate []byte) FingerprintBytes {
	return FingerprintBytes(sha3.Sum256(certificate))
}
