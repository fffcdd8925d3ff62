// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/storage"
	"github.com/nftszn/traderd/util"
)

// description recorded against the venue on the external ledger
const venueDescription = "NFT SZN custodial marketplace"

// globals
var globalData struct {
	sync.RWMutex
	log     *logger.L
	service ledger.Service
	admin   account.AccountID

	// venue is only valid once Initialized
	venue ledger.VenueID

	// set once during initialise
	initialised bool
}

// Initialise - load the persisted venue and remember the admin account
func Initialise(service ledger.Service, admin account.AccountID) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.service = service
	globalData.admin = admin

	trx := storage.TransactionBegin()
	defer trx.Abort()

	if record := trx.Get(storage.Pool.Contract, storage.VenueKey); nil != record {
		venue, n := util.FromVarint64(record)
		if 0 == n || n != len(record) {
			return fault.ProcessError("corrupt venue record")
		}
		globalData.venue = ledger.VenueID(venue)
	}

	globalData.initialised = true
	return nil
}

// Finalise - shutdown
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Initialize - open the marketplace
//
// creates the settlement venue on the external ledger, persists its id
// together with the Initialized state; only the admin account may call
func Initialize(caller account.AccountID) (ledger.VenueID, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.admin {
		return 0, fault.NotAdmin
	}

	trx := storage.TransactionBegin()
	defer trx.Abort()

	if !mode.Is(mode.Deployed) {
		return 0, fault.AlreadyInitialised
	}

	venue, err := globalData.service.CreateVenue(venueDescription)
	if nil != err {
		return 0, err
	}

	trx.Put(storage.Pool.Contract, storage.VenueKey, util.ToVarint64(uint64(venue)))
	confirm, err := mode.Set(trx, mode.Initialized)
	if nil != err {
		return 0, err
	}

	if err := trx.Commit(); nil != err {
		return 0, err
	}
	confirm()

	globalData.venue = venue
	globalData.log.Infof("marketplace open  venue: %d", venue)
	return venue, nil
}

// Close - close the marketplace permanently
//
// idempotent; repeated calls leave the state Closed with no further
// writes
func Close(caller account.AccountID) error {
	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.admin {
		return fault.NotAdmin
	}

	if mode.Is(mode.Closed) {
		return nil
	}

	trx := storage.TransactionBegin()
	defer trx.Abort()

	confirm, err := mode.Set(trx, mode.Closed)
	if nil != err {
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}
	confirm()

	globalData.log.Info("marketplace closed")
	return nil
}

// Status - current lifecycle state
func Status() mode.State {
	return mode.Current()
}

// Venue - the settlement venue id, false before the marketplace opened
func Venue() (ledger.VenueID, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !mode.Is(mode.Deployed) {
		return globalData.venue, true
	}
	return 0, false
}
