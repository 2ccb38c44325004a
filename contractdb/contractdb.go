// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

/*
Package contractdb is the registry view over contract records, the fuel-rate
chain parameter, and the per-transaction involved-address association.
*/
package contractdb

import (
	"bytes"
	"sort"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/waykichain/wicc-go/common/address"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/types"
)

var (
	contractKeyPrefix = []byte("wicc-contract-")
	txRelKeyPrefix    = []byte("wicc-txrel-")
	fuelRateKey       = []byte("wicc-param-fuelrate")
)

// DB is one registry view bound to a KV. The lru fronts contract reads only:
// contract records are immutable once deployed, and a view never outlives the
// overlay it was built over, so read-through caching stays consistent.
type DB struct {
	kv     dbm.KV
	ccache *lru.Cache
}

// NewContractDB registry view over kv
func NewContractDB(kv dbm.KV) *DB {
	cache, _ := lru.New(256)
	return &DB{kv: kv, ccache: cache}
}

// ContractKey storage key of a contract record
func ContractKey(regID types.RegID) []byte {
	return append(append([]byte{}, contractKeyPrefix...), regID.Raw()...)
}

// TxRelKey storage key of a tx involved-address association
func TxRelKey(txHash []byte) []byte {
	return append(append([]byte{}, txRelKeyPrefix...), txHash...)
}

// GetContract the record deployed under regID, types.ErrContractNotExist
// when absent
func (c *DB) GetContract(regID types.RegID) (*types.Contract, error) {
	ckey := string(regID.Raw())
	if v, ok := c.ccache.Get(ckey); ok {
		return v.(*types.Contract), nil
	}
	value, err := c.kv.Get(ContractKey(regID))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrContractNotExist
		}
		return nil, err
	}
	contract, err := types.DecodeContract(value)
	if err != nil {
		return nil, errors.Wrap(err, "decode contract record")
	}
	c.ccache.Add(ckey, contract)
	return contract, nil
}

// HaveContract reports whether regID resolves to a deployed record
func (c *DB) HaveContract(regID types.RegID) bool {
	_, err := c.GetContract(regID)
	return err == nil
}

// SaveContract persists the record under regID
func (c *DB) SaveContract(regID types.RegID, contract *types.Contract) error {
	return c.kv.Set(ContractKey(regID), contract.Encode())
}

// GetFuelRate the active fuel rate: the registry parameter when one is set,
// otherwise the configured default. The rate is a chain parameter and may
// change by height/fork through the registry.
func (c *DB) GetFuelRate() uint64 {
	value, err := c.kv.Get(fuelRateKey)
	if err != nil {
		return types.GDefaultFuelRate()
	}
	r := types.NewReader(value)
	rate, err := r.Uvarint()
	if err != nil || rate == 0 {
		return types.GDefaultFuelRate()
	}
	return rate
}

// SetFuelRate installs a fuel-rate override
func (c *DB) SetFuelRate(rate uint64) error {
	w := types.NewWriter()
	w.WriteUvarint(rate)
	return c.kv.Set(fuelRateKey, w.Bytes())
}

// SetTxRelAccount persists the involved key ids of a confirmed transaction,
// keyed by its hash, so indexers can answer without re-executing
func (c *DB) SetTxRelAccount(txHash []byte, keyIDs map[address.KeyID]struct{}) error {
	sorted := make([][]byte, 0, len(keyIDs))
	for id := range keyIDs {
		sorted = append(sorted, id.Bytes())
	}
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

	w := types.NewWriter()
	w.WriteUvarint(uint64(len(sorted)))
	for _, raw := range sorted {
		w.WriteBytes(raw)
	}
	return c.kv.Set(TxRelKey(txHash), w.Bytes())
}

// GetTxRelAccount the cached involved key ids of txHash; ok is false when no
// association was ever persisted
func (c *DB) GetTxRelAccount(txHash []byte) (map[address.KeyID]struct{}, bool, error) {
	value, err := c.kv.Get(TxRelKey(txHash))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, false, nil
		}
		return nil, false, err
	}
	r := types.NewReader(value)
	n, err := r.Uvarint()
	if err != nil {
		return nil, false, errors.Wrap(err, "decode txrel set")
	}
	keyIDs := make(map[address.KeyID]struct{}, n)
	for i := uint64(0); i < n; i++ {
		raw, err := r.Bytes()
		if err != nil || len(raw) != address.KeyIDLen {
			return nil, false, errors.Wrap(types.ErrDecode, "decode txrel key id")
		}
		keyIDs[address.NewKeyID(raw)] = struct{}{}
	}
	return keyIDs, true, nil
}
