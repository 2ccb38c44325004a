// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb key not present
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV is the minimal transactional view the ledger and registry caches are
// built over. Get returns ErrNotFoundInDb for a missing key.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// DB is a persistent KV backend
type DB interface {
	KV
	Delete(key []byte) error
	Close()
}

const (
	// GoLevelDBBackendStr goleveldb backend name
	GoLevelDBBackendStr = "goleveldb"
	// MemDBBackendStr in-memory backend name
	MemDBBackendStr = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB open a named backend, panics on unknown backend or open failure
func NewDB(name string, backend string, dir string, cache int) DB {
	creator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("unknown db backend %s", backend))
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		panic(fmt.Sprintf("initializing db error: %v", err))
	}
	return db
}
