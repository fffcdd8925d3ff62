// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/nftszn/traderd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Portfolios *PoolHandle `prefix:"P"`
	Listings   *PoolHandle `prefix:"L"`
	Contract   *PoolHandle `prefix:"C"`
}

// Pool - the set of exported pools
var Pool pools

// keys inside the Contract pool
var (
	StateKey = []byte{'S'}
	VenueKey = []byte{'V'}
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB
	trx *transactionData

	// set once during initialise
	initialised bool
}

// Initialise - open the database and create the pool handles
//
// this must be called before any transaction is begun
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if poolData.initialised {
		return fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")
	poolData.log.Info("starting…")

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		poolData.log.Criticalf("cannot open database: %q  error: %s", database, err)
		return err
	}
	poolData.db = db

	poolData.trx = &transactionData{
		access: newDA(db, new(leveldb.Batch), newCache()),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			logger.Panicf("storage.Initialise: pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		handle := &PoolHandle{
			prefix: prefixTag[0],
		}
		newP := reflect.ValueOf(handle)
		poolValue.Field(i).Set(newP)
	}

	poolData.initialised = true
	return nil
}

// Finalise - close the database
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.initialised {
		return
	}

	poolData.log.Info("shutting down…")
	poolData.db.Close()
	poolData.db = nil
	poolData.trx = nil
	poolData.initialised = false
	poolData.log.Info("finished")
	poolData.log.Flush()
}
