// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"sort"

	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
)

// BalanceOpType free-balance operation kind
type BalanceOpType int32

// balance operations
const (
	AddFree BalanceOpType = iota + 1
	SubFree
)

// Account is one ledger record. KeyID is stable and unique; RegID, once
// assigned, never changes; balances never go negative at a commit point.
type Account struct {
	KeyID       address.KeyID
	RegID       RegID
	NickID      string
	OwnerPubKey []byte
	Balances    map[string]uint64
}

// NewAccount empty account for keyID
func NewAccount(keyID address.KeyID) *Account {
	return &Account{KeyID: keyID, Balances: make(map[string]uint64)}
}

// HaveOwnerPubKey reports whether the account finished registration
func (a *Account) HaveOwnerPubKey() bool {
	return len(a.OwnerPubKey) > 0
}

// GetFree free balance of symbol
func (a *Account) GetFree(symbol string) uint64 {
	return a.Balances[symbol]
}

// OperateBalance applies op to the free balance of symbol. SubFree fails on
// insufficient funds, leaving the account untouched.
func (a *Account) OperateBalance(symbol string, op BalanceOpType, value uint64) bool {
	if a.Balances == nil {
		a.Balances = make(map[string]uint64)
	}
	switch op {
	case AddFree:
		a.Balances[symbol] += value
		return true
	case SubFree:
		if a.Balances[symbol] < value {
			return false
		}
		a.Balances[symbol] -= value
		return true
	default:
		return false
	}
}

// Clone deep copy
func (a *Account) Clone() *Account {
	out := &Account{
		KeyID:       a.KeyID,
		RegID:       a.RegID,
		NickID:      a.NickID,
		OwnerPubKey: common.CopyBytes(a.OwnerPubKey),
		Balances:    make(map[string]uint64, len(a.Balances)),
	}
	for k, v := range a.Balances {
		out.Balances[k] = v
	}
	return out
}

// Encode deterministic binary form; balances sorted by symbol
func (a *Account) Encode() []byte {
	w := NewWriter()
	w.WriteBytes(a.KeyID.Bytes())
	if a.RegID.IsEmpty() {
		w.WriteBytes(nil)
	} else {
		w.WriteBytes(a.RegID.Raw())
	}
	w.WriteString(a.NickID)
	w.WriteBytes(a.OwnerPubKey)

	symbols := make([]string, 0, len(a.Balances))
	for s := range a.Balances {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	w.WriteUvarint(uint64(len(symbols)))
	for _, s := range symbols {
		w.WriteString(s)
		w.WriteUvarint(a.Balances[s])
	}
	return w.Bytes()
}

// DecodeAccount inverse of Encode
func DecodeAccount(data []byte) (*Account, error) {
	r := NewReader(data)
	keyid, err := r.Bytes()
	if err != nil || len(keyid) != address.KeyIDLen {
		return nil, ErrDecode
	}
	acct := NewAccount(address.NewKeyID(keyid))

	rawRegID, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if len(rawRegID) > 0 {
		acct.RegID, err = RegIDFromRaw(rawRegID)
		if err != nil {
			return nil, err
		}
	}
	if acct.NickID, err = r.String(); err != nil {
		return nil, err
	}
	if acct.OwnerPubKey, err = r.Bytes(); err != nil {
		return nil, err
	}
	n, err := r.Uvarint()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < n; i++ {
		symbol, err := r.String()
		if err != nil {
			return nil, err
		}
		value, err := r.Uvarint()
		if err != nil {
			return nil, err
		}
		acct.Balances[symbol] = value
	}
	return acct, nil
}
