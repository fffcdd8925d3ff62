// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Transaction - staged mutation of the storage pools
//
// exactly one transaction is open at any time; Begin blocks until the
// previous one finished, making the transaction the mutual-exclusion
// scope for all public marketplace operations
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Range(*PoolHandle, func(key []byte, value []byte) bool)
	Commit() error
	Abort()
}

type transactionData struct {
	inUse  bool
	access Access
}

// serialises all transactions
var transactionLock sync.Mutex

// TransactionBegin - open the transaction, blocking until available
func TransactionBegin() Transaction {
	transactionLock.Lock()

	poolData.RLock()
	defer poolData.RUnlock()
	if !poolData.initialised {
		transactionLock.Unlock()
		logger.Panic("storage.TransactionBegin: not initialised")
	}

	trx := poolData.trx
	trx.inUse = true
	return trx
}

func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	t.access.Put(pool.prefixKey(key), value)
}

func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	t.access.Delete(pool.prefixKey(key))
}

// Get - read through the overlay; nil when the key does not exist
func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(pool.prefixKey(key))
	logger.PanicIfError("storage.Get", err)
	return value
}

func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	ok, err := t.access.Has(pool.prefixKey(key))
	logger.PanicIfError("storage.Has", err)
	return ok
}

// Range - iterate committed records of a pool in key order
//
// staged writes of this transaction are not visible; the callback
// returns false to stop early
func (t *transactionData) Range(pool *PoolHandle, f func(key []byte, value []byte) bool) {
	searchRange := ldb_util.Range{
		Start: []byte{pool.prefix},
		Limit: []byte{pool.prefix + 1},
	}

	iter := t.access.Iterator(&searchRange)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break
		}
	}
	logger.PanicIfError("storage.Range", iter.Error())
}

// Commit - write all staged mutations to the database
func (t *transactionData) Commit() error {
	if !t.inUse {
		return nil
	}
	err := t.access.Commit()
	t.inUse = false
	transactionLock.Unlock()
	return err
}

// Abort - discard all staged mutations
//
// safe to defer: a no-op after Commit
func (t *transactionData) Abort() {
	if !t.inUse {
		return
	}
	t.access.Abort()
	t.inUse = false
	transactionLock.Unlock()
}
