// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/storage"
)

const testingDirName = "testing"

func setup(t *testing.T) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(testingDirName + "/test.leveldb")
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = mode.Initialise()
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = mode.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestFreshContractIsDeployed(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.True(t, mode.Is(mode.Deployed), "fresh contract not Deployed")
	assert.Equal(t, fault.NotInitialised, mode.EnsureReady(), "EnsureReady on Deployed")
	assert.Equal(t, fault.NotInitialised, mode.EnsureWithdraw(), "EnsureWithdraw on Deployed")
}

func TestTransitions(t *testing.T) {
	setup(t)
	defer teardown(t)

	// cannot skip straight back to Deployed or re-enter Initialized
	trx := storage.TransactionBegin()
	_, err := mode.Set(trx, mode.Deployed)
	assert.Equal(t, fault.InvalidStateTransition, err, "transition to Deployed accepted")

	confirm, err := mode.Set(trx, mode.Initialized)
	assert.NoError(t, err, "Deployed → Initialized rejected")
	assert.NoError(t, trx.Commit(), "commit error")
	confirm()

	assert.NoError(t, mode.EnsureReady(), "EnsureReady on Initialized")
	assert.NoError(t, mode.EnsureWithdraw(), "EnsureWithdraw on Initialized")

	trx = storage.TransactionBegin()
	_, err = mode.Set(trx, mode.Initialized)
	assert.Equal(t, fault.InvalidStateTransition, err, "re-initialise accepted")

	confirm, err = mode.Set(trx, mode.Closed)
	assert.NoError(t, err, "Initialized → Closed rejected")
	assert.NoError(t, trx.Commit(), "commit error")
	confirm()

	assert.Equal(t, fault.ContractClosed, mode.EnsureReady(), "EnsureReady on Closed")
	assert.NoError(t, mode.EnsureWithdraw(), "EnsureWithdraw on Closed")

	// close is idempotent
	trx = storage.TransactionBegin()
	confirm, err = mode.Set(trx, mode.Closed)
	assert.NoError(t, err, "repeated close rejected")
	assert.NoError(t, trx.Commit(), "commit error")
	confirm()
}

func TestStatePersists(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := storage.TransactionBegin()
	confirm, err := mode.Set(trx, mode.Initialized)
	assert.NoError(t, err, "set error")
	assert.NoError(t, trx.Commit(), "commit error")
	confirm()

	// simulate a restart: reload state from storage
	assert.NoError(t, mode.Finalise(), "finalise error")
	assert.NoError(t, mode.Initialise(), "re-initialise error")

	assert.True(t, mode.Is(mode.Initialized), "state lost on restart")
}

// a transition staged in a transaction that never commits must not
// leak into memory or into the database
func TestAbortedTransitionKeepsState(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx := storage.TransactionBegin()
	confirm, err := mode.Set(trx, mode.Initialized)
	assert.NoError(t, err, "set error")
	assert.NotNil(t, confirm, "missing confirm")
	trx.Abort()

	// memory still serves the old state to the gates
	assert.True(t, mode.Is(mode.Deployed), "aborted transition leaked into memory")
	assert.Equal(t, fault.NotInitialised, mode.EnsureReady(), "gate served diverged state")

	// the database holds the old state too
	assert.NoError(t, mode.Finalise(), "finalise error")
	assert.NoError(t, mode.Initialise(), "re-initialise error")
	assert.True(t, mode.Is(mode.Deployed), "aborted transition persisted")
}
