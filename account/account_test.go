// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykichain/wicc-go/common/address"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/types"
)

func newTestDB(t *testing.T) *DB {
	kv, err := dbm.NewGoMemDB("accounttest", "", 0)
	require.NoError(t, err)
	return NewAccountDB(kv)
}

func registeredAccount(height int64, index int32, pub []byte) *types.Account {
	acct := types.NewAccount(address.PubKeyToKeyID(pub))
	acct.RegID = types.NewRegID(height, index)
	acct.OwnerPubKey = pub
	return acct
}

func TestSaveAndGetAccount(t *testing.T) {
	db := newTestDB(t)
	pub := append([]byte{2}, make([]byte, 32)...)
	acct := registeredAccount(10, 1, pub)
	acct.OperateBalance("WICC", types.AddFree, 500)
	require.NoError(t, db.SaveAccount(acct))

	// all three identity encodings resolve to the same record
	byReg, err := db.GetAccount(types.NewRegUID(acct.RegID))
	require.NoError(t, err)
	byPub, err := db.GetAccount(types.NewPubKeyUID(pub))
	require.NoError(t, err)
	byKey, err := db.GetAccount(types.NewKeyUID(acct.KeyID))
	require.NoError(t, err)
	assert.Equal(t, byReg, byPub)
	assert.Equal(t, byReg, byKey)
	assert.Equal(t, uint64(500), byReg.GetFree("WICC"))
}

func TestGetAccountMissing(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetAccount(types.NewRegUID(types.NewRegID(1, 1)))
	assert.Equal(t, types.ErrAccountNotExist, err)

	_, err = db.GetAccount(types.NewKeyUID(types.NewRegID(1, 1).KeyID()))
	assert.Equal(t, types.ErrAccountNotExist, err)

	_, err = db.GetAccount(types.UserID{})
	assert.Equal(t, types.ErrInvalidUserID, err)
}

func TestGetKeyID(t *testing.T) {
	db := newTestDB(t)
	pub := append([]byte{3}, make([]byte, 32)...)
	acct := registeredAccount(20, 2, pub)
	require.NoError(t, db.SaveAccount(acct))

	id, err := db.GetKeyID(types.NewRegUID(acct.RegID))
	require.NoError(t, err)
	assert.Equal(t, acct.KeyID, id)

	id, err = db.GetKeyID(types.NewPubKeyUID(pub))
	require.NoError(t, err)
	assert.Equal(t, acct.KeyID, id)

	_, err = db.GetKeyID(types.NewRegUID(types.NewRegID(99, 9)))
	assert.Equal(t, types.ErrAccountNotExist, err)
}

func TestSetAccountUpdatePath(t *testing.T) {
	db := newTestDB(t)
	pub := append([]byte{2}, make([]byte, 31)...)
	pub = append(pub, 7)
	acct := registeredAccount(30, 0, pub)
	require.NoError(t, db.SaveAccount(acct))

	acct.OperateBalance("WICC", types.AddFree, 42)
	require.NoError(t, db.SetAccount(types.NewKeyUID(acct.KeyID), acct))

	got, err := db.LoadAccount(acct.KeyID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.GetFree("WICC"))

	// update path refuses a record that does not belong to the uid
	other := types.NewAccount(types.NewRegID(31, 0).KeyID())
	assert.Error(t, db.SetAccount(types.NewKeyUID(acct.KeyID), other))
}

func TestGetRegID(t *testing.T) {
	db := newTestDB(t)
	pub := append([]byte{3}, make([]byte, 32)...)
	acct := registeredAccount(40, 5, pub)
	require.NoError(t, db.SaveAccount(acct))

	regID, err := db.GetRegID(types.NewPubKeyUID(pub))
	require.NoError(t, err)
	assert.Equal(t, acct.RegID, regID)

	// account without an assigned regid
	bare := types.NewAccount(address.PubKeyToKeyID([]byte{9, 9}))
	require.NoError(t, db.SaveAccount(bare))
	_, err = db.GetRegID(types.NewKeyUID(bare.KeyID))
	assert.Equal(t, types.ErrInvalidRegID, err)
}

func TestSaveAccountEmptyKeyID(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, types.ErrEmptyKeyID, db.SaveAccount(types.NewAccount(address.KeyID{})))
}
