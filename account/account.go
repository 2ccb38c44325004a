// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

/*
Package account is the ledger view over account records.

Records are stored by key id; reg id and nickname aliases are secondary
indexes written once on the create path (SaveAccount) and never rewritten on
the update path (SetAccount). All reads and writes go through the KV the view
was built over, so transactional overlay semantics come from the caller's KV,
not from this package.
*/
package account

import (
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/waykichain/wicc-go/common/address"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/types"
)

var alog = log.New("module", "account")

var (
	acctKeyPrefix  = []byte("wicc-acct-")
	regIDKeyPrefix = []byte("wicc-regid-")
	nickKeyPrefix  = []byte("wicc-nick-")
)

// DB is one ledger view bound to a KV
type DB struct {
	kv dbm.KV
}

// NewAccountDB ledger view over kv
func NewAccountDB(kv dbm.KV) *DB {
	return &DB{kv: kv}
}

// AccountKey storage key of an account record
func AccountKey(keyID address.KeyID) []byte {
	return append(append([]byte{}, acctKeyPrefix...), keyID.Bytes()...)
}

// RegIDKey storage key of the regid -> keyid index
func RegIDKey(regID types.RegID) []byte {
	return append(append([]byte{}, regIDKeyPrefix...), regID.Raw()...)
}

// NickKey storage key of the nickname -> keyid index
func NickKey(nick string) []byte {
	return append(append([]byte{}, nickKeyPrefix...), []byte(nick)...)
}

// LoadAccount reads the record stored under keyID,
// types.ErrAccountNotExist when absent
func (a *DB) LoadAccount(keyID address.KeyID) (*types.Account, error) {
	value, err := a.kv.Get(AccountKey(keyID))
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrAccountNotExist
		}
		return nil, err
	}
	acct, err := types.DecodeAccount(value)
	if err != nil {
		return nil, errors.Wrap(err, "decode account record")
	}
	return acct, nil
}

// GetKeyID resolves any user id encoding to the canonical key id
func (a *DB) GetKeyID(uid types.UserID) (address.KeyID, error) {
	switch uid.Type() {
	case types.RegUID:
		raw, err := a.kv.Get(RegIDKey(uid.RegID()))
		if err != nil {
			if err == dbm.ErrNotFoundInDb {
				return address.KeyID{}, types.ErrAccountNotExist
			}
			return address.KeyID{}, err
		}
		keyID := address.NewKeyID(raw)
		if keyID.IsEmpty() {
			return address.KeyID{}, types.ErrEmptyKeyID
		}
		return keyID, nil
	case types.PubKeyUID:
		return address.PubKeyToKeyID(uid.PubKey()), nil
	case types.KeyUID:
		return uid.KeyID(), nil
	default:
		return address.KeyID{}, types.ErrInvalidUserID
	}
}

// GetAccount resolves uid and loads its record
func (a *DB) GetAccount(uid types.UserID) (*types.Account, error) {
	keyID, err := a.GetKeyID(uid)
	if err != nil {
		return nil, err
	}
	return a.LoadAccount(keyID)
}

// GetRegID the reg id an identity resolves to, if one was ever assigned
func (a *DB) GetRegID(uid types.UserID) (types.RegID, error) {
	if uid.Type() == types.RegUID {
		return uid.RegID(), nil
	}
	acct, err := a.GetAccount(uid)
	if err != nil {
		return types.RegID{}, err
	}
	if acct.RegID.IsEmpty() {
		return types.RegID{}, types.ErrInvalidRegID
	}
	return acct.RegID, nil
}

// SetAccount is the update path: rewrite the record of an existing account.
// Alias indexes are left alone; a reg id, once assigned, never changes.
func (a *DB) SetAccount(uid types.UserID, acct *types.Account) error {
	keyID, err := a.GetKeyID(uid)
	if err != nil {
		return err
	}
	if keyID != acct.KeyID {
		alog.Error("SetAccount keyid mismatch", "uid", uid.String(), "keyid", acct.KeyID.Hex())
		return types.ErrInvalidUserID
	}
	return a.kv.Set(AccountKey(keyID), acct.Encode())
}

// SaveAccount is the create path: persist the record and write the alias
// indexes the account carries.
func (a *DB) SaveAccount(acct *types.Account) error {
	if acct.KeyID.IsEmpty() {
		return types.ErrEmptyKeyID
	}
	if err := a.kv.Set(AccountKey(acct.KeyID), acct.Encode()); err != nil {
		return err
	}
	if !acct.RegID.IsEmpty() {
		if err := a.kv.Set(RegIDKey(acct.RegID), acct.KeyID.Bytes()); err != nil {
			return err
		}
	}
	if acct.NickID != "" {
		if err := a.kv.Set(NickKey(acct.NickID), acct.KeyID.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
