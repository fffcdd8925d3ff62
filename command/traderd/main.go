// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/account"
	"github.com/nftszn/traderd/background"
	"github.com/nftszn/traderd/counter"
	"github.com/nftszn/traderd/custody"
	"github.com/nftszn/traderd/ledger"
	"github.com/nftszn/traderd/ledger/local"
	"github.com/nftszn/traderd/market"
	"github.com/nftszn/traderd/messagebus"
	"github.com/nftszn/traderd/mode"
	"github.com/nftszn/traderd/nft"
	"github.com/nftszn/traderd/rpc"
	"github.com/nftszn/traderd/sale"
	"github.com/nftszn/traderd/storage"
	"github.com/nftszn/traderd/trade"
)

// one rpc listener over TLS
type serverChannel struct {
	// initial values
	limit               int
	addresses           []string
	certificateFileName string
	keyFileName         string
	callback            listener.Callback
	argument            interface{}

	// filled in later
	tlsConfiguration *tls.Config
	limiter          *listener.Limiter
	listener         *listener.MultiListener
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: exactly one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the admin account and collection symbol
	admin, err := account.AccountIDFromBase58(theConfiguration.Admin)
	if nil != err {
		log.Criticalf("invalid admin account: %q  error: %s", theConfiguration.Admin, err)
		exitwithstatus.Message("invalid admin account: %q  error: %s", theConfiguration.Admin, err)
	}
	collection, err := nft.CollectionFromString(theConfiguration.Collection)
	if nil != err {
		log.Criticalf("invalid collection: %q  error: %s", theConfiguration.Collection, err)
		exitwithstatus.Message("invalid collection: %q  error: %s", theConfiguration.Collection, err)
	}
	log.Infof("admin: %s", admin)
	log.Infof("collection: %s", collection)

	// start the data storage
	log.Info("initialise storage")
	databaseFile := theConfiguration.Database.Directory + "/" + theConfiguration.Database.Name
	err = storage.Initialise(databaseFile)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// lifecycle state - before any operations are served
	err = mode.Initialise()
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()
	log.Infof("contract state: %s", mode.String())

	// connect the external custody ledger
	service, err := connectLedger(log, theConfiguration)
	if nil != err {
		log.Criticalf("ledger connect error: %s", err)
		exitwithstatus.Message("ledger connect error: %s", err)
	}

	log.Info("initialise market")
	err = market.Initialise(service, admin)
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}
	defer market.Finalise()

	log.Info("initialise custody")
	err = custody.Initialise(service, collection)
	if nil != err {
		log.Criticalf("custody initialise error: %s", err)
		exitwithstatus.Message("custody initialise error: %s", err)
	}
	defer custody.Finalise()

	log.Info("initialise sale")
	err = sale.Initialise(service, collection)
	if nil != err {
		log.Criticalf("sale initialise error: %s", err)
		exitwithstatus.Message("sale initialise error: %s", err)
	}
	defer sale.Finalise()

	log.Info("initialise trade")
	err = trade.Initialise(service, collection)
	if nil != err {
		log.Criticalf("trade initialise error: %s", err)
		exitwithstatus.Message("trade initialise error: %s", err)
	}
	defer trade.Finalise()

	// start background processes
	log.Info("start background…")
	processes := background.Processes{
		&eventLogger{log: logger.New("event")},
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	// the rpc listener
	rpcLog := logger.New("rpc-server")
	var rpcCount counter.Counter

	server := &serverChannel{
		limit:               theConfiguration.ClientRPC.MaximumConnections,
		addresses:           theConfiguration.ClientRPC.Listen,
		certificateFileName: theConfiguration.ClientRPC.Certificate,
		keyFileName:         theConfiguration.ClientRPC.PrivateKey,
		callback:            rpc.Callback,
		argument: &rpc.ServerArgument{
			Log:    rpcLog,
			Server: rpc.Create(rpcLog, version),
			Count:  &rpcCount,
		},
	}

	_, ok := verifyListen(log, "rpc", server)
	if !ok {
		log.Critical("invalid rpc parameters")
		exitwithstatus.Message("invalid rpc parameters")
	}
	if 0 == server.limit {
		log.Critical("rpc listening is disabled")
		exitwithstatus.Message("rpc listening is disabled")
	}

	ml, err := listener.NewMultiListener("rpc", server.addresses, server.tlsConfiguration, server.limiter, server.callback)
	if nil != err {
		log.Criticalf("invalid rpc listen addresses: %v  error: %s", server.addresses, err)
		exitwithstatus.Message("invalid rpc listen addresses: %v  error: %s", server.addresses, err)
	}
	server.listener = ml

	log.Infof("starting server: rpc on: %v", server.addresses)
	server.listener.Start(server.argument)
	defer server.listener.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)

	log.Info("shutting down…")
}

// select and seed the custody ledger
func connectLedger(log *logger.L, theConfiguration *Configuration) (ledger.Service, error) {
	switch theConfiguration.Ledger.Mode {
	case "", "local":
		l := local.New()
		for _, entry := range theConfiguration.Ledger.Accounts {
			acct, err := account.AccountIDFromBase58(entry.Account)
			if nil != err {
				return nil, err
			}
			identity, err := account.IdentityIDFromBase58(entry.Identity)
			if nil != err {
				return nil, err
			}
			l.RegisterAccount(acct, identity)
			if 0 != entry.Balance {
				l.SetBalance(acct, entry.Balance)
			}
			if entry.Authorize {
				authID := l.IssueAuthorization(identity, 0, 24*time.Hour)
				log.Infof("custody authorization for: %s  id: %d", acct, authID)
			}
		}
		log.Infof("local ledger with %d accounts", len(theConfiguration.Ledger.Accounts))
		return l, nil

	default:
		return nil, fmt.Errorf("unsupported ledger mode: %q", theConfiguration.Ledger.Mode)
	}
}

// background process to write marketplace events to the log
type eventLogger struct {
	log *logger.L
}

func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	log := e.log
	for {
		select {
		case <-shutdown:
			return
		case event := <-messagebus.Chan():
			switch e := event.(type) {
			case messagebus.PortfolioAdded:
				log.Infof("portfolio added: %s", e.Portfolio)
			case messagebus.PortfolioRemoved:
				log.Infof("portfolio removed: %s", e.Portfolio)
			case messagebus.WithdrawnNFTs:
				log.Infof("withdrawn: %v from: %s", e.Assets, e.Portfolio)
			case messagebus.NFTsForSale:
				log.Infof("for sale: %v delisted: %v portfolio: %s", e.Listed, e.Delisted, e.Portfolio)
			case messagebus.NFTSold:
				log.Infof("sold: %d for: %d to: %s", e.Asset, e.Amount, e.Portfolio)
			default:
				log.Warnf("unknown event: %v", e)
			}
		}
	}
}
