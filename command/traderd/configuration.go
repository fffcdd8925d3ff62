// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/configuration"
	"github.com/nftszn/traderd/fault"
	"github.com/nftszn/traderd/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "trader.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "traderd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RPCType - configuration file data for RPC setup
type RPCType struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// LedgerAccountType - one pre funded account of the local ledger
//
// authorize issues a custody authorization for the account's default
// portfolio at startup; its id is written to the log
type LedgerAccountType struct {
	Account   string `gluamapper:"account" json:"account"`
	Identity  string `gluamapper:"identity" json:"identity"`
	Balance   uint64 `gluamapper:"balance" json:"balance"`
	Authorize bool   `gluamapper:"authorize" json:"authorize"`
}

// LedgerType - selection of the external custody ledger
//
// only the deterministic in-process ledger is currently wired; the
// accounts list seeds it at startup
type LedgerType struct {
	Mode     string              `gluamapper:"mode" json:"mode"`
	Accounts []LedgerAccountType `gluamapper:"accounts" json:"accounts"`
}

// Configuration - the configuration file data
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string `gluamapper:"pidfile" json:"pidfile"`

	Admin      string `gluamapper:"admin" json:"admin"`
	Collection string `gluamapper:"collection" json:"collection"`

	Database  DatabaseType         `gluamapper:"database" json:"database"`
	ClientRPC RPCType              `gluamapper:"client_rpc" json:"client_rpc"`
	Ledger    LedgerType           `gluamapper:"ledger" json:"ledger"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: RPCType{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Ledger: LedgerType{
			Mode: "local",
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// the admin account and the collection have no defaults
	if "" == options.Admin || "" == options.Collection {
		return nil, fault.MissingParameters
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.DataDirectoryMissing
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fault.DataDirectoryMissing
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the directory does not exist
	if !util.EnsureFileExists(options.Database.Directory) {
		err := os.MkdirAll(options.Database.Directory, 0700)
		if nil != err {
			return nil, err
		}
	}

	return options, nil
}
