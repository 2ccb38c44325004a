// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waykichain/wicc-go/common/address"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/statedb"
	"github.com/waykichain/wicc-go/types"
	"github.com/waykichain/wicc-go/vm"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Execute(ctx *vm.Context, cw *statedb.CacheWrapper) (*vm.Result, error) {
	args := m.Called(ctx, cw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vm.Result), args.Error(1)
}

// testWorld is one in-memory chain state with a funded, registered sender
type testWorld struct {
	cw     *statedb.CacheWrapper
	priv   *btcec.PrivateKey
	pub    []byte
	sender *types.Account
}

const senderBalance = 1000000

func newWorld(t *testing.T) *testWorld {
	t.Helper()
	setTestConfig(t, func(cfg *types.Config) { cfg.MinTxFee = 1 })

	base, err := dbm.NewGoMemDB("contracttest", "", 0)
	require.NoError(t, err)
	cw := statedb.NewCacheWrapper(base)

	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey().SerializeCompressed()

	sender := types.NewAccount(address.PubKeyToKeyID(pub))
	sender.RegID = types.NewRegID(10, 1)
	sender.OwnerPubKey = pub
	sender.OperateBalance(types.GCoinSymbol(), types.AddFree, senderBalance)
	require.NoError(t, cw.AccountCache.SaveAccount(sender))

	return &testWorld{cw: cw, priv: priv, pub: pub, sender: sender}
}

func (w *testWorld) senderUID() types.UserID {
	return types.NewRegUID(w.sender.RegID)
}

// deployContract plants a contract record and its account at regID
func (w *testWorld) deployContract(t *testing.T, regID types.RegID) {
	t.Helper()
	acct := types.NewAccount(regID.KeyID())
	acct.RegID = regID
	require.NoError(t, w.cw.AccountCache.SaveAccount(acct))
	contract := types.NewContract(types.LuaVM, []byte("contract bytecode"), "", "test contract")
	require.NoError(t, w.cw.ContractCache.SaveContract(regID, contract))
}

func (w *testWorld) signDeploy(tx *DeployTx) *DeployTx {
	tx.Signature = types.Sign(w.priv, tx.SignBytes())
	return tx
}

func (w *testWorld) signInvoke(tx *InvokeTx) *InvokeTx {
	tx.Signature = types.Sign(w.priv, tx.SignBytes())
	return tx
}

func (w *testWorld) freeBalance(t *testing.T, keyID address.KeyID) uint64 {
	t.Helper()
	acct, err := w.cw.AccountCache.LoadAccount(keyID)
	if err == types.ErrAccountNotExist {
		return 0
	}
	require.NoError(t, err)
	return acct.GetFree(types.GCoinSymbol())
}

func requireTxErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	te, ok := types.IsTxError(err)
	require.True(t, ok, "not a TxError: %v", err)
	require.Equal(t, code, te.Code)
}
