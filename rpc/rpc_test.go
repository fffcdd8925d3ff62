// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"net"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/counter"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/ledger/local"
	"github.com/nftszn/traderd/market"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/rpc"
	"github.com/nftszn/traderd/sale"
	"github.com/nftszn/traderd/storage"
	"github.com/nftszn/traderd/trade"
)

const testingDirName = "testing"

var (
	admin         = account.AccountID{0x01}
	adminIdentity = account.IdentityID{0x11}
	alice         = account.AccountID{0x0a}
	aliceIdentity = account.IdentityID{0x1a}
	bob           = account.AccountID{0x0b}
	bobIdentity   = account.IdentityID{0x1b}
)

// serve one jsonrpc connection over an in-memory pipe
func startServer(t *testing.T) *netrpc.Client {
	serverSide, clientSide := net.Pipe()

	server := rpc.Create(logger.New("rpc-test"), "test")
	go server.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	return jsonrpc.NewClient(clientSide)
}

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

	l := local.New()
	l.RegisterAccount(admin, adminIdentity)
	l.RegisterAccount(alice, aliceIdentity)
	l.RegisterAccount(bob, bobIdentity)

	collection, err := nft.CollectionFromString("SZN24")
	if nil != err {
		t.Fatalf("collection error: %s", err)
	}

	err = market.Initialise(l, admin)
	if nil != err {
		t.Fatalf("market initialise error: %s", err)
	}
	err = custody.Initialise(l, collection)
	if nil != err {
		t.Fatalf("custody initialise error: %s", err)
	}
	err = sale.Initialise(l, collection)
	if nil != err {
		t.Fatalf("sale initialise error: %s", err)
	}
	err = trade.Initialise(l, collection)
	if nil != err {
		t.Fatalf("trade initialise error: %s", err)
	}
	return l
}

func teardown(t *testing.T) {
	_ = trade.Finalise()
	_ = sale.Finalise()
	_ = custody.Finalise()
	_ = market.Finalise()
	_ = mode.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestRPCRoundTrip(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	client := startServer(t)
	defer client.Close()

	// open the marketplace
	var initReply rpc.TraderInitializeReply
	err := client.Call("Trader.Initialize", rpc.TraderInitializeArguments{Caller: admin}, &initReply)
	assert.Nil(t, err, "initialize error")
	assert.Equal(t, "Initialized", initReply.State, "wrong state")

	var statusReply rpc.TraderStatusReply
	err = client.Call("Trader.Status", rpc.TraderStatusArguments{}, &statusReply)
	assert.Nil(t, err, "status error")
	assert.Equal(t, "Initialized", statusReply.State, "wrong status state")
	assert.Equal(t, "test", statusReply.Version, "wrong version")

	// take custody for both parties
	authID := l.IssueAuthorization(aliceIdentity, 0, time.Minute)
	var acceptReply rpc.CustodyAcceptReply
	err = client.Call("Custody.Accept", rpc.CustodyAcceptArguments{
		Caller:          alice,
		AuthorizationID: authID,
	}, &acceptReply)
	assert.Nil(t, err, "accept error")
	assert.Equal(t, aliceIdentity, acceptReply.Portfolio.Identity, "wrong portfolio identity")

	authID = l.IssueAuthorization(bobIdentity, 0, time.Minute)
	err = client.Call("Custody.Accept", rpc.CustodyAcceptArguments{
		Caller:          bob,
		AuthorizationID: authID,
	}, &acceptReply)
	assert.Nil(t, err, "accept error")

	// list asset 7 at 100 and buy it attaching 150
	collection, _ := nft.CollectionFromString("SZN24")
	l.Mint(collection, 7, acceptReply.Portfolio)

	price := uint64(100)
	var listReply rpc.SaleListReply
	err = client.Call("Sale.List", rpc.SaleListArguments{
		Caller: bob,
		Offers: []rpc.SaleOffer{{Asset: 7, Price: &price}},
	}, &listReply)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, listReply.Listed, "wrong listed count")

	var getReply rpc.SaleGetReply
	err = client.Call("Sale.Get", rpc.SaleGetArguments{Asset: 7}, &getReply)
	assert.Nil(t, err, "get error")
	assert.True(t, getReply.ForSale, "not for sale")
	assert.Equal(t, uint64(100), getReply.Price, "wrong price")

	l.SetBalance(alice, 1000)
	var buyReply rpc.TradeBuyReply
	err = client.Call("Trade.Buy", rpc.TradeBuyArguments{
		Caller: alice,
		Asset:  7,
		Amount: 150,
	}, &buyReply)
	assert.Nil(t, err, "buy error")
	assert.Equal(t, aliceIdentity, buyReply.Portfolio.Identity, "wrong buyer")

	var allReply rpc.SaleAllListedReply
	err = client.Call("Sale.AllListed", rpc.SaleAllListedArguments{}, &allReply)
	assert.Nil(t, err, "all listed error")
	assert.Empty(t, allReply.Assets, "listing survived sale")
}

// the connection handler must be usable as a listener callback
var _ listener.Callback = rpc.Callback

func TestCallbackServesConnection(t *testing.T) {
	setup(t)
	defer teardown(t)

	serverSide, clientSide := net.Pipe()

	var count counter.Counter
	log := logger.New("rpc-test")
	argument := &rpc.ServerArgument{
		Log:    log,
		Server: rpc.Create(log, "test"),
		Count:  &count,
	}
	go rpc.Callback(serverSide, argument)

	client := jsonrpc.NewClient(clientSide)
	defer client.Close()

	var statusReply rpc.TraderStatusReply
	err := client.Call("Trader.Status", rpc.TraderStatusArguments{}, &statusReply)
	assert.Nil(t, err, "status error")
	assert.Equal(t, "Deployed", statusReply.State, "wrong state")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRPCErrorsAreStrings(t *testing.T) {
	setup(t)
	defer teardown(t)

	client := startServer(t)
	defer client.Close()

	// marketplace not opened
	var buyReply rpc.TradeBuyReply
	err := client.Call("Trade.Buy", rpc.TradeBuyArguments{
		Caller: alice,
		Asset:  7,
		Amount: 100,
	}, &buyReply)
	assert.NotNil(t, err, "buy before open allowed")
	assert.Equal(t, fault.NotInitialised.Error(), err.Error(), "wrong error over the wire")

	var closeReply rpc.TraderCloseReply
	err = client.Call("Trader.Close", rpc.TraderCloseArguments{Caller: bob}, &closeReply)
	assert.NotNil(t, err, "non-admin close allowed")
	assert.Equal(t, fault.NotAdmin.Error(), err.Error(), "wrong error over the wire")
}
