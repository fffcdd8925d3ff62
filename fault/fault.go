// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyHavePortfolio          = ExistsError("caller already has a custodial portfolio")
	AlreadyInitialised            = ExistsError("already initialised")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ContractClosed                = ProcessError("contract is closed")
	DataDirectoryMissing          = NotFoundError("data directory is missing")
	FailedToPaySeller             = ProcessError("failed to pay the seller")
	InvalidCount                  = InvalidError("invalid count")
	InvalidPortfolioAuthorization = InvalidError("invalid portfolio custody authorization")
	InvalidStateTransition        = InvalidError("invalid contract state transition")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MissingParameters             = InvalidError("missing parameters")
	MissingPortfolio              = NotFoundError("the seller's custodial portfolio is missing")
	NoPortfolio                   = NotFoundError("caller does not have a custodial portfolio")
	NotAdmin                      = InvalidError("caller is not the contract admin")
	NotForSale                    = NotFoundError("asset is not for sale")
	NotInPortfolio                = NotFoundError("asset is not in the caller's custodial portfolio")
	NotInitialised                = ProcessError("not initialised")
	RateLimiting                  = ProcessError("rate limiting active")
	TransferredValueTooLow        = InvalidError("transferred value is below the sale price")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
