// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

/*
Package statedb provides the layered copy-on-write overlay the transaction
state machines run against.

Layering, innermost first: txcache (one transaction's uncommitted writes),
cache (writes of earlier transactions in the same block), base (committed
chain state). Reads see the nearest layer; writes land in txcache between
Begin and Commit/Rollback and in cache otherwise. Nothing reaches base until
Flush, so a failed transaction is undone by dropping its txcache, never by
compensating writes.
*/
package statedb

import (
	"bytes"
	"sort"

	"github.com/waykichain/wicc-go/account"
	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/contractdb"
	"github.com/waykichain/wicc-go/types"
)

var txAddrKeyPrefix = []byte("wicc-txaddr-")

// StateDB is the overlay KV
type StateDB struct {
	base    dbm.KV
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB overlay over base
func NewStateDB(base dbm.KV) *StateDB {
	return &StateDB{
		base:  base,
		cache: make(map[string][]byte),
	}
}

// Begin opens a per-transaction write layer
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = nil
}

// Rollback drops the per-transaction layer
func (s *StateDB) Rollback() {
	s.intx = false
	s.txcache = nil
}

// Commit folds the per-transaction layer into the block layer
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.intx = false
	s.txcache = nil
}

// Get reads through the layers, dbm.ErrNotFoundInDb when missing everywhere
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return common.CopyBytes(value), nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		return common.CopyBytes(value), nil
	}
	return s.base.Get(key)
}

// Set writes to the innermost open layer
func (s *StateDB) Set(key []byte, value []byte) error {
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.txcache[string(key)] = common.CopyBytes(value)
		return nil
	}
	s.cache[string(key)] = common.CopyBytes(value)
	return nil
}

// Flush writes the block layer down to base. Called once the enclosing block
// is fully validated; deterministic key order.
func (s *StateDB) Flush() error {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.base.Set([]byte(k), s.cache[k]); err != nil {
			return err
		}
	}
	s.cache = make(map[string][]byte)
	return nil
}

// CacheWrapper binds one overlay to the ledger and registry views every
// state-machine call is parameterized by. Commit and rollback are its
// exclusive responsibility; the state machines never undo their own writes.
type CacheWrapper struct {
	state *StateDB

	AccountCache  *account.DB
	ContractCache *contractdb.DB
}

// NewCacheWrapper wrapper over base
func NewCacheWrapper(base dbm.KV) *CacheWrapper {
	state := NewStateDB(base)
	return &CacheWrapper{
		state:         state,
		AccountCache:  account.NewAccountDB(state),
		ContractCache: contractdb.NewContractDB(state),
	}
}

// Begin opens the per-transaction layer
func (c *CacheWrapper) Begin() { c.state.Begin() }

// Commit keeps the transaction's writes in the block layer
func (c *CacheWrapper) Commit() { c.state.Commit() }

// Rollback discards the transaction's writes
func (c *CacheWrapper) Rollback() { c.state.Rollback() }

// Flush commits the block layer to the backing store
func (c *CacheWrapper) Flush() error { return c.state.Flush() }

// Spawn a disposable child wrapper: it reads the parent's current view, its
// writes never reach the parent. Used for mempool candidate checks and
// fallback re-execution.
func (c *CacheWrapper) Spawn() *CacheWrapper {
	return NewCacheWrapper(c.state)
}

// TxAddrKey storage key of the (height, index) slot address list
func TxAddrKey(height int64, index int32) []byte {
	w := types.NewWriter()
	w.WriteVarint(height)
	w.WriteVarint(int64(index))
	return append(append([]byte{}, txAddrKeyPrefix...), w.Bytes()...)
}

// SaveTxAddresses resolves uids and persists the address list of the
// (height, index) slot for downstream indexing
func (c *CacheWrapper) SaveTxAddresses(height int64, index int32, uids []types.UserID) error {
	keyIDs := make([][]byte, 0, len(uids))
	seen := make(map[address.KeyID]struct{}, len(uids))
	for _, uid := range uids {
		keyID, err := c.AccountCache.GetKeyID(uid)
		if err != nil {
			return err
		}
		if _, ok := seen[keyID]; ok {
			continue
		}
		seen[keyID] = struct{}{}
		keyIDs = append(keyIDs, keyID.Bytes())
	}
	sort.Slice(keyIDs, func(i, j int) bool { return bytes.Compare(keyIDs[i], keyIDs[j]) < 0 })

	w := types.NewWriter()
	w.WriteUvarint(uint64(len(keyIDs)))
	for _, raw := range keyIDs {
		w.WriteBytes(raw)
	}
	return c.state.Set(TxAddrKey(height, index), w.Bytes())
}

// GetTxAddresses the address list saved for the (height, index) slot
func (c *CacheWrapper) GetTxAddresses(height int64, index int32) ([]address.KeyID, error) {
	value, err := c.state.Get(TxAddrKey(height, index))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, nil
		}
		return nil, err
	}
	r := types.NewReader(value)
	n, err := r.Uvarint()
	if err != nil {
		return nil, err
	}
	out := make([]address.KeyID, 0, n)
	for i := uint64(0); i < n; i++ {
		raw, err := r.Bytes()
		if err != nil || len(raw) != address.KeyIDLen {
			return nil, types.ErrDecode
		}
		out = append(out, address.NewKeyID(raw))
	}
	return out, nil
}
