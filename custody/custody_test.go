// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/ledger/local"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/storage"
)

const testingDirName = "testing"

var (
	alice         = account.AccountID{0x0a}
	aliceIdentity = account.IdentityID{0x1a}
	bob           = account.AccountID{0x0b}
	bobIdentity   = account.IdentityID{0x1b}
)

func setup(t *testing.T) *local.Ledger {
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

	// contract is live for most tests
	trx := storage.TransactionBegin()
	confirm, err := mode.Set(trx, mode.Initialized)
	if nil != err {
		t.Fatalf("mode set error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	confirm()

	l := local.New()
	l.RegisterAccount(alice, aliceIdentity)
	l.RegisterAccount(bob, bobIdentity)

	collection, err := nft.CollectionFromString("SZN24")
	if nil != err {
		t.Fatalf("collection error: %s", err)
	}
	err = custody.Initialise(l, collection)
	if nil != err {
		t.Fatalf("custody initialise error: %s", err)
	}
	return l
}

func teardown(t *testing.T) {
	_ = custody.Finalise()
	_ = mode.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func acceptFor(t *testing.T, l *local.Ledger, caller account.AccountID, identity account.IdentityID, ref ledger.PortfolioRef) ledger.PortfolioID {
	authID := l.IssueAuthorization(identity, ref, time.Minute)
	portfolio, err := custody.Accept(caller, authID, ref)
	if nil != err {
		t.Fatalf("accept error: %s", err)
	}
	return portfolio
}

func TestAccept(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	portfolio := acceptFor(t, l, alice, aliceIdentity, 3)

	assert.Equal(t, aliceIdentity, portfolio.Identity, "wrong identity")
	assert.Equal(t, ledger.PortfolioRef(3), portfolio.Number, "wrong portfolio number")
	assert.True(t, l.HasCustody(portfolio), "ledger custody not taken")

	info, err := custody.Info(alice)
	assert.Nil(t, err, "info error")
	assert.Equal(t, portfolio, info.ID, "stored record mismatch")
	assert.Empty(t, info.ListedIDs(), "fresh portfolio has listings")
}

func TestAcceptSecondPortfolioRejected(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	acceptFor(t, l, alice, aliceIdentity, 0)

	authID := l.IssueAuthorization(aliceIdentity, 1, time.Minute)
	_, err := custody.Accept(alice, authID, 1)
	assert.Equal(t, fault.AlreadyHavePortfolio, err, "second accept allowed")
}

func TestAcceptForeignAuthorizationRejected(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	// authorization covers bob's portfolio but alice calls
	authID := l.IssueAuthorization(bobIdentity, 0, time.Minute)
	_, err := custody.Accept(alice, authID, 0)
	assert.Equal(t, fault.InvalidPortfolioAuthorization, err, "foreign authorization accepted")

	// the mismatched custody was released again
	assert.False(t, l.HasCustody(ledger.PortfolioID{Identity: bobIdentity, Number: 0}), "mismatched custody kept")
}

func TestAcceptConsumedAuthorizationRejected(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	authID := l.IssueAuthorization(aliceIdentity, 0, time.Minute)
	_, err := custody.Accept(alice, authID, 0)
	assert.Nil(t, err, "first accept error")

	_, err = custody.Return(alice)
	assert.Nil(t, err, "return error")

	_, err = custody.Accept(alice, authID, 0)
	assert.Equal(t, fault.InvalidPortfolioAuthorization, err, "consumed authorization accepted")
}

func TestAcceptUnknownCaller(t *testing.T) {
	setup(t)
	defer teardown(t)

	stranger := account.AccountID{0xff}
	_, err := custody.Accept(stranger, 1, 0)
	assert.Equal(t, local.ErrUnknownAccount, err, "unknown caller accepted")
}

func TestReturn(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	portfolio := acceptFor(t, l, alice, aliceIdentity, 0)

	returned, err := custody.Return(alice)
	assert.Nil(t, err, "return error")
	assert.Equal(t, portfolio, returned, "wrong portfolio returned")
	assert.False(t, l.HasCustody(portfolio), "ledger custody not released")

	_, err = custody.Info(alice)
	assert.Equal(t, fault.NoPortfolio, err, "record survived return")

	_, err = custody.Return(alice)
	assert.Equal(t, fault.NoPortfolio, err, "double return allowed")
}

func TestWithdraw(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	portfolio := acceptFor(t, l, alice, aliceIdentity, 0)

	collection, _ := nft.CollectionFromString("SZN24")
	l.Mint(collection, 7, portfolio)
	l.Mint(collection, 9, portfolio)

	// track as listed via the record directly
	trx := storage.TransactionBegin()
	record, err := custody.FetchPortfolio(trx, aliceIdentity)
	assert.Nil(t, err, "fetch error")
	record.Add(7)
	record.Add(9)
	record.Store(trx)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	err = custody.Withdraw(alice, []nft.ID{7}, 2)
	assert.Nil(t, err, "withdraw error")

	destination := ledger.PortfolioID{Identity: aliceIdentity, Number: 2}
	owner, ok, err := l.QueryAssetOwner(collection, 7)
	assert.Nil(t, err, "owner query error")
	assert.True(t, ok, "asset lost")
	assert.Equal(t, destination, owner, "asset not moved")

	info, err := custody.Info(alice)
	assert.Nil(t, err, "info error")
	assert.Equal(t, []nft.ID{9}, info.ListedIDs(), "tracked set not updated")
}

func TestWithdrawValidation(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	err := custody.Withdraw(alice, nil, 0)
	assert.Equal(t, fault.MissingParameters, err, "empty withdraw allowed")

	err = custody.Withdraw(alice, []nft.ID{7}, 0)
	assert.Equal(t, fault.NoPortfolio, err, "withdraw without portfolio allowed")

	acceptFor(t, l, alice, aliceIdentity, 0)
	err = custody.Withdraw(alice, []nft.ID{7}, 0)
	assert.Equal(t, fault.NotInPortfolio, err, "untracked withdraw allowed")
}

func TestWithdrawUntrackedAbortsWholeBatch(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	portfolio := acceptFor(t, l, alice, aliceIdentity, 0)

	collection, _ := nft.CollectionFromString("SZN24")
	l.Mint(collection, 7, portfolio)

	trx := storage.TransactionBegin()
	record, err := custody.FetchPortfolio(trx, aliceIdentity)
	assert.Nil(t, err, "fetch error")
	record.Add(7)
	record.Store(trx)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	// 8 is untracked so nothing moves, including 7
	err = custody.Withdraw(alice, []nft.ID{7, 8}, 0)
	assert.Equal(t, fault.NotInPortfolio, err, "partial batch allowed")

	owner, ok, err := l.QueryAssetOwner(collection, 7)
	assert.Nil(t, err, "owner query error")
	assert.True(t, ok, "asset lost")
	assert.Equal(t, portfolio, owner, "asset moved despite abort")

	info, err := custody.Info(alice)
	assert.Nil(t, err, "info error")
	assert.Equal(t, []nft.ID{7}, info.ListedIDs(), "tracked set changed despite abort")
}

func TestReturnAndWithdrawAfterClose(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	portfolio := acceptFor(t, l, alice, aliceIdentity, 0)

	collection, _ := nft.CollectionFromString("SZN24")
	l.Mint(collection, 7, portfolio)

	trx := storage.TransactionBegin()
	record, err := custody.FetchPortfolio(trx, aliceIdentity)
	assert.Nil(t, err, "fetch error")
	record.Add(7)
	record.Store(trx)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	trx = storage.TransactionBegin()
	confirm, err := mode.Set(trx, mode.Closed)
	assert.Nil(t, err, "close error")
	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	confirm()

	// accept is gated but recovery still works
	authID := l.IssueAuthorization(bobIdentity, 0, time.Minute)
	_, err = custody.Accept(bob, authID, 0)
	assert.Equal(t, fault.ContractClosed, err, "accept allowed after close")

	err = custody.Withdraw(alice, []nft.ID{7}, 0)
	assert.Nil(t, err, "withdraw after close error")

	_, err = custody.Return(alice)
	assert.Nil(t, err, "return after close error")
}
