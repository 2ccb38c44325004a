// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykichain/wicc-go/common/address"
	"github.com/waykichain/wicc-go/types"
)

func newDeploy(w *testWorld, fee uint64) *DeployTx {
	code := make([]byte, 100)
	for i := range code {
		code[i] = byte(i)
	}
	return w.signDeploy(NewDeployTx(w.senderUID(), fee, 100, code, "test memo"))
}

func TestDeployCheckTxOK(t *testing.T) {
	w := newWorld(t)
	tx := newDeploy(w, 10000)
	require.NoError(t, tx.CheckTx(100, w.cw))
}

func TestDeployCheckTxRejects(t *testing.T) {
	w := newWorld(t)

	t.Run("fee floor", func(t *testing.T) {
		tx := newDeploy(w, 0)
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "bad-tx-fee-toosmall")
	})

	t.Run("pubkey sender not permitted", func(t *testing.T) {
		tx := NewDeployTx(types.NewPubKeyUID(w.pub), 10000, 100, []byte("code"), "")
		tx.Signature = types.Sign(w.priv, tx.SignBytes())
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "txUid-type-error")
	})

	t.Run("invalid payload", func(t *testing.T) {
		tx := w.signDeploy(NewDeployTx(w.senderUID(), 10000, 100, nil, ""))
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "vmscript-invalid")
	})

	t.Run("fee under fuel", func(t *testing.T) {
		// 100 bytes of code at the default rate costs 100 fuel
		tx := newDeploy(w, 50)
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "fee-too-litter-to-afford-fuel")
	})

	t.Run("missing sender account", func(t *testing.T) {
		tx := NewDeployTx(types.NewRegUID(types.NewRegID(99, 9)), 10000, 100, []byte("code"), "")
		tx.Signature = types.Sign(w.priv, tx.SignBytes())
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "bad-getaccount")
	})

	t.Run("unregistered sender", func(t *testing.T) {
		bare := types.NewAccount(types.NewRegID(11, 1).KeyID())
		bare.RegID = types.NewRegID(11, 1)
		require.NoError(t, w.cw.AccountCache.SaveAccount(bare))
		tx := NewDeployTx(types.NewRegUID(bare.RegID), 10000, 100, []byte("code"), "")
		tx.Signature = types.Sign(w.priv, tx.SignBytes())
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "bad-account-unregistered")
	})

	t.Run("bad signature", func(t *testing.T) {
		tx := newDeploy(w, 10000)
		tx.Signature = types.Sign(w.priv, []byte("something else"))
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "bad-tx-signature")
	})

	t.Run("empty signature", func(t *testing.T) {
		tx := newDeploy(w, 10000)
		tx.Signature = nil
		requireTxErrCode(t, tx.CheckTx(100, w.cw), "bad-tx-sig-size")
	})
}

func TestDeployLegacyPerKBReject(t *testing.T) {
	w := newWorld(t)
	setTestConfig(t, func(cfg *types.Config) {
		cfg.MinTxFee = 1
		cfg.MinRelayTxFee = 1000
		cfg.ForkV2Height = 0 // legacy window active
	})
	require.NoError(t, w.cw.ContractCache.SetFuelRate(80))

	// 80 bytes of code at rate 80 costs 80 fuel: the absolute fuel check
	// passes with fee 100, the per-KB relay floor does not
	code := make([]byte, 80)
	tx := w.signDeploy(NewDeployTx(w.senderUID(), 100, 100, code, ""))
	requireTxErrCode(t, tx.CheckTx(100, w.cw), "fee-too-litter-in-fees/Kb")
}

func TestDeployExecuteTx(t *testing.T) {
	w := newWorld(t)
	tx := newDeploy(w, 10000)
	require.NoError(t, tx.CheckTx(100, w.cw))

	w.cw.Begin()
	require.NoError(t, tx.ExecuteTx(100, 0, w.cw))
	w.cw.Commit()

	// fee debited from the sender
	assert.Equal(t, uint64(senderBalance-10000), w.freeBalance(t, w.sender.KeyID))

	// contract record and account exist under the minted slot id
	contractRegID := types.NewRegID(100, 0)
	contract, err := w.cw.ContractCache.GetContract(contractRegID)
	require.NoError(t, err)
	assert.Equal(t, tx.Payload.Code, contract.Code)
	assert.Equal(t, "test memo", contract.Memo)
	assert.Equal(t, types.LuaVM, contract.VMKind)

	contractAcct, err := w.cw.AccountCache.GetAccount(types.NewRegUID(contractRegID))
	require.NoError(t, err)
	assert.Equal(t, contractRegID.KeyID(), contractAcct.KeyID)
	assert.False(t, contractAcct.HaveOwnerPubKey())
	assert.Empty(t, contractAcct.NickID)

	// code size charged as the step count
	assert.Equal(t, uint64(100), tx.RunStep)

	// sender registered as involved
	addrs, err := w.cw.GetTxAddresses(100, 0)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, w.sender.KeyID, addrs[0])

	involved, err := tx.GetInvolvedKeyIDs(w.cw)
	require.NoError(t, err)
	assert.Equal(t, map[address.KeyID]struct{}{w.sender.KeyID: {}}, involved)
}

func TestDeployDistinctSlotsDistinctIDs(t *testing.T) {
	w := newWorld(t)
	tx1 := newDeploy(w, 10000)
	tx2 := newDeploy(w, 10000)

	w.cw.Begin()
	require.NoError(t, tx1.ExecuteTx(100, 0, w.cw))
	w.cw.Commit()
	w.cw.Begin()
	require.NoError(t, tx2.ExecuteTx(100, 1, w.cw))
	w.cw.Commit()

	r1, r2 := types.NewRegID(100, 0), types.NewRegID(100, 1)
	assert.NotEqual(t, r1, r2)
	assert.NotEqual(t, r1.KeyID(), r2.KeyID())
	assert.True(t, w.cw.ContractCache.HaveContract(r1))
	assert.True(t, w.cw.ContractCache.HaveContract(r2))
}

func TestDeployExecuteInsufficientFunds(t *testing.T) {
	w := newWorld(t)
	tx := newDeploy(w, senderBalance+1)

	w.cw.Begin()
	err := tx.ExecuteTx(100, 0, w.cw)
	requireTxErrCode(t, err, "operate-account-failed")
	w.cw.Rollback()

	// no trace of the attempt
	assert.Equal(t, uint64(senderBalance), w.freeBalance(t, w.sender.KeyID))
}

func TestDeployPresentation(t *testing.T) {
	w := newWorld(t)
	tx := newDeploy(w, 10000)

	s := tx.ToString(w.cw.AccountCache)
	assert.Contains(t, s, "txType=CONTRACT_DEPLOY_TX")
	assert.Contains(t, s, "accountId=10-1")
	assert.Contains(t, s, "llFees=10000")
	assert.True(t, strings.HasSuffix(s, "\n"))

	j := tx.ToJSON(w.cw.AccountCache)
	assert.Equal(t, "CONTRACT_DEPLOY_TX", j.TxType)
	assert.Equal(t, "10-1", j.RegID)
	assert.Equal(t, w.sender.KeyID.ToAddress(), j.Addr)
	assert.Equal(t, string(tx.Payload.Code), j.ContractCode)
	assert.Equal(t, "test memo", j.ContractMemo)
	assert.NotEmpty(t, j.TxID)
}

func TestDeployCodec(t *testing.T) {
	w := newWorld(t)
	tx := newDeploy(w, 10000)

	back, err := DecodeDeployTx(tx.Encode())
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), back.Hash())
	assert.Equal(t, tx.Payload, back.Payload)
	assert.Equal(t, tx.Fee, back.Fee)

	_, err = DecodeDeployTx([]byte{1, 2, 3})
	assert.Error(t, err)

	// body length prefix near 2^64: decode fails, no allocation blowup
	_, err = DecodeDeployTx(binary.AppendUvarint(nil, math.MaxUint64))
	assert.Error(t, err)
}
