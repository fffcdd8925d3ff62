// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - contract lifecycle state
//
// The state is monotonic: Deployed → Initialized → Closed, persisted in
// the contract pool so a restart resumes where the daemon left off.
// Transitions go through an explicit table; anything not in the table
// is rejected.
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/storage"
)

// State - type to hold the contract state
type State int

// all possible states
const (
	Deployed State = iota
	Initialized
	Closed
	maximum
)

var globalData struct {
	sync.RWMutex
	log   *logger.L
	state State

	// set once during initialise
	initialised bool
}

// Initialise - set up the state system, loading any persisted state
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	trx := storage.TransactionBegin()
	defer trx.Abort()

	globalData.state = Deployed
	if record := trx.Get(storage.Pool.Contract, storage.StateKey); nil != record {
		if 1 != len(record) || State(record[0]) >= maximum {
			globalData.log.Criticalf("corrupt state record: %x", record)
			return fault.InvalidStateTransition
		}
		globalData.state = State(record[0])
	}
	globalData.log.Infof("contract state: %s", globalData.state)

	globalData.initialised = true
	return nil
}

// Finalise - shutdown state handling
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

// the transition table; anything else is rejected
func (s State) canTransitionTo(newState State) bool {
	switch newState {
	case Initialized:
		return Deployed == s
	case Closed:
		return true // close is permitted from any state and is idempotent
	default:
		return false
	}
}

// Set - stage a state transition in the given transaction
//
// only the database write is staged here; the returned confirm
// function applies the transition to memory and must be called once
// the caller's transaction has committed. An aborted or failed
// commit simply never confirms, leaving memory and database agreeing
// on the old state.
func Set(trx storage.Transaction, newState State) (func(), error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.state.canTransitionTo(newState) {
		globalData.log.Errorf("rejected transition: %s → %s", globalData.state, newState)
		return nil, fault.InvalidStateTransition
	}

	trx.Put(storage.Pool.Contract, storage.StateKey, []byte{byte(newState)})

	confirm := func() {
		globalData.Lock()
		defer globalData.Unlock()
		globalData.state = newState
		globalData.log.Infof("set: %s", newState)
	}
	return confirm, nil
}

// Is - detect state
func Is(state State) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return state == globalData.state
}

// Current - the current state
func Current() State {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.state
}

// EnsureReady - trading operations require an initialised, open
// contract
func EnsureReady() error {
	globalData.RLock()
	defer globalData.RUnlock()

	switch globalData.state {
	case Initialized:
		return nil
	case Closed:
		return fault.ContractClosed
	default:
		return fault.NotInitialised
	}
}

// EnsureWithdraw - withdrawals are still allowed when the contract has
// been closed
func EnsureWithdraw() error {
	globalData.RLock()
	defer globalData.RUnlock()

	switch globalData.state {
	case Initialized, Closed:
		return nil
	default:
		return fault.NotInitialised
	}
}

// String - current state represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.state.String()
}

func (s State) String() string {
	switch s {
	case Deployed:
		return "Deployed"
	case Initialized:
		return "Initialized"
	case Closed:
		return "Closed"
	default:
		return "*Unknown*"
	}
}
