// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykichain/wicc-go/account"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/types"
)

func TestGetKeyIDByRawRegID(t *testing.T) {
	kv, err := dbm.NewGoMemDB("keyidtest", "", 0)
	require.NoError(t, err)
	view := account.NewAccountDB(kv)

	acct := types.NewAccount(types.NewRegID(50, 3).KeyID())
	acct.RegID = types.NewRegID(50, 3)
	require.NoError(t, view.SaveAccount(acct))

	keyID, ok := getKeyID(view, string(acct.RegID.Raw()))
	require.True(t, ok)
	assert.Equal(t, acct.KeyID, keyID)

	// unknown reg id fails resolution
	_, ok = getKeyID(view, string(types.NewRegID(51, 0).Raw()))
	assert.False(t, ok)
}

func TestGetKeyIDByAddress(t *testing.T) {
	kv, _ := dbm.NewGoMemDB("keyidtest", "", 0)
	view := account.NewAccountDB(kv)

	id := types.NewRegID(60, 0).KeyID()
	keyID, ok := getKeyID(view, id.ToAddress())
	require.True(t, ok)
	assert.Equal(t, id, keyID)

	// 34 chars but not a valid address
	_, ok = getKeyID(view, "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	assert.False(t, ok)
}

func TestGetKeyIDBadLength(t *testing.T) {
	kv, _ := dbm.NewGoMemDB("keyidtest", "", 0)
	view := account.NewAccountDB(kv)

	_, ok := getKeyID(view, "")
	assert.False(t, ok)
	_, ok = getKeyID(view, "short")
	assert.False(t, ok)
	_, ok = getKeyID(view, "a string that is neither six nor thirty-four")
	assert.False(t, ok)
}
