// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"fmt"
	"time"

	"github.com/waykichain/wicc-go/account"
	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
	"github.com/waykichain/wicc-go/statedb"
	"github.com/waykichain/wicc-go/types"
	"github.com/waykichain/wicc-go/vm"
)

// InvokeTx calls a deployed contract: it moves fee plus principal before the
// engine runs, then applies the engine's account deltas.
type InvokeTx struct {
	types.TxBase
	// AppUID the invoked application, must resolve to a reg id
	AppUID types.UserID
	// Value principal transferred to the contract account
	Value uint64
	// Arguments opaque call arguments handed to the engine
	Arguments []byte
}

// NewInvokeTx unsigned invoke transaction
func NewInvokeTx(sender types.UserID, appUID types.UserID, fee, value uint64, validHeight int64, arguments []byte) *InvokeTx {
	return &InvokeTx{
		TxBase: types.TxBase{
			TxType:      types.TxContractInvoke,
			Version:     types.CurrentVersion,
			TxUID:       sender,
			Fee:         fee,
			ValidHeight: validHeight,
		},
		AppUID:    appUID,
		Value:     value,
		Arguments: common.CopyBytes(arguments),
	}
}

// SignBytes the deterministic encoding covered by the signature
func (tx *InvokeTx) SignBytes() []byte {
	w := types.NewWriter()
	tx.EncodeBase(w)
	tx.AppUID.Encode(w)
	w.WriteUvarint(tx.Value)
	w.WriteBytes(tx.Arguments)
	return w.Bytes()
}

// Encode full wire encoding, signature last
func (tx *InvokeTx) Encode() []byte {
	w := types.NewWriter()
	w.WriteBytes(tx.SignBytes())
	w.WriteBytes(tx.Signature)
	return w.Bytes()
}

// DecodeInvokeTx inverse of Encode
func DecodeInvokeTx(data []byte) (*InvokeTx, error) {
	r := types.NewReader(data)
	body, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	sig, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	tx := &InvokeTx{}
	br := types.NewReader(body)
	if err := tx.DecodeBase(br); err != nil {
		return nil, err
	}
	if tx.TxType != types.TxContractInvoke {
		return nil, types.ErrDecode
	}
	if tx.AppUID, err = types.DecodeUserID(br); err != nil {
		return nil, err
	}
	if tx.Value, err = br.Uvarint(); err != nil {
		return nil, err
	}
	if tx.Arguments, err = br.Bytes(); err != nil {
		return nil, err
	}
	tx.Signature = sig
	return tx, nil
}

// Hash transaction id: SHA256d over the full encoding
func (tx *InvokeTx) Hash() []byte {
	h := common.Sha2Sum(tx.Encode())
	return h[:]
}

// Size serialized size in bytes
func (tx *InvokeTx) Size() int {
	return len(tx.Encode())
}

// CheckTx admission checks; read-only. Invoking a non-existent contract is
// rejected here, before any balance movement.
func (tx *InvokeTx) CheckTx(height int64, cw *statedb.CacheWrapper) error {
	if err := checkTxFeeFloor(tx.Fee); err != nil {
		return err
	}
	if len(tx.Arguments) > types.MaxContractArgumentSize {
		return types.DoS(dosFull, types.RejectInvalid, "arguments-size-toolarge",
			"arguments size %d too large", len(tx.Arguments))
	}
	switch tx.TxUID.Type() {
	case types.RegUID, types.PubKeyUID:
	default:
		return types.DoS(dosFull, types.RejectInvalid, "txUid-type-error",
			"invoke txUid must be a reg id or public key")
	}
	if tx.AppUID.Type() != types.RegUID {
		return types.DoS(dosFull, types.RejectInvalid, "appUid-type-error",
			"appUid must be a reg id")
	}
	if tx.TxUID.Type() == types.PubKeyUID && !types.IsPubKeyFullyValid(tx.TxUID.PubKey()) {
		return types.DoS(dosFull, types.RejectInvalid, "bad-publickey", "public key is invalid")
	}

	srcAccount, err := cw.AccountCache.GetAccount(tx.TxUID)
	if err != nil {
		return types.DoS(dosFull, types.RejectInvalid, "bad-getaccount",
			"read account failed, uid=%s", tx.TxUID.String())
	}
	if !srcAccount.HaveOwnerPubKey() {
		return types.DoS(dosFull, types.RejectInvalid, "bad-account-unregistered",
			"account unregistered")
	}

	if _, err := cw.ContractCache.GetContract(tx.AppUID.RegID()); err != nil {
		return types.DoS(dosFull, types.RejectInvalid, "bad-read-script",
			"read script failed, regId=%s", tx.AppUID.RegID().String())
	}

	pubKey := srcAccount.OwnerPubKey
	if tx.TxUID.Type() == types.PubKeyUID {
		pubKey = tx.TxUID.PubKey()
	}
	if err := checkSignature(tx.SignBytes(), tx.Signature, pubKey); err != nil {
		return err
	}
	return nil
}

// ExecuteTx applies the invocation at the (height, index) slot. Ordering is
// consensus: the principal moves strictly before the engine call, and the
// involved set reflects the engine's post-execution account set. Failure at
// any step is undone by the caller rolling the overlay back.
func (tx *InvokeTx) ExecuteTx(height int64, index int32, cw *statedb.CacheWrapper, engine vm.Engine) error {
	srcAcct, err := cw.AccountCache.GetAccount(tx.TxUID)
	if err != nil {
		return types.DoS(dosFull, types.ReadAccountFail, "bad-read-accountdb",
			"read source addr account info error")
	}
	generateRegID := false
	if tx.TxUID.Type() == types.PubKeyUID {
		srcAcct.OwnerPubKey = tx.TxUID.PubKey()

		// the only place a reg id is lazily assigned
		if _, err := cw.AccountCache.GetRegID(tx.TxUID); err != nil {
			srcAcct.RegID = types.NewRegID(height, index)
			generateRegID = true
		}
	}

	minusValue := tx.Fee + tx.Value
	if !srcAcct.OperateBalance(types.GCoinSymbol(), types.SubFree, minusValue) {
		return types.DoS(dosFull, types.UpdateAccountFail, "operate-minus-account-failed",
			"account has insufficient funds")
	}

	// a freshly minted reg id needs the create path so its alias index lands
	if generateRegID {
		if err := cw.AccountCache.SaveAccount(srcAcct); err != nil {
			return types.DoS(dosFull, types.WriteAccountFail, "bad-write-accountdb",
				"save account info error")
		}
	} else {
		if err := cw.AccountCache.SetAccount(types.NewKeyUID(srcAcct.KeyID), srcAcct); err != nil {
			return types.DoS(dosFull, types.WriteAccountFail, "bad-write-accountdb",
				"save account info error")
		}
	}

	desAcct, err := cw.AccountCache.GetAccount(tx.AppUID)
	if err != nil {
		return types.DoS(dosFull, types.ReadAccountFail, "bad-read-accountdb",
			"get account info failed by regid:%s", tx.AppUID.RegID().String())
	}
	if !desAcct.OperateBalance(types.GCoinSymbol(), types.AddFree, tx.Value) {
		return types.DoS(dosFull, types.UpdateAccountFail, "operate-add-account-failed",
			"operate accounts error")
	}
	if err := cw.AccountCache.SetAccount(tx.AppUID, desAcct); err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-save-account",
			"save account error, keyId=%s", desAcct.KeyID.Hex())
	}

	if _, err := cw.ContractCache.GetContract(tx.AppUID.RegID()); err != nil {
		return types.DoS(dosFull, types.ReadAccountFail, "bad-read-script",
			"read script failed, regId=%s", tx.AppUID.RegID().String())
	}

	fuelRate := cw.ContractCache.GetFuelRate()
	ctx := &vm.Context{
		TxHash:    tx.Hash(),
		Sender:    tx.TxUID,
		AppRegID:  tx.AppUID.RegID(),
		Value:     tx.Value,
		Arguments: tx.Arguments,
		Height:    height,
		FuelRate:  fuelRate,
		RunStep:   tx.RunStep,
	}
	start := time.Now()
	result, err := engine.Execute(ctx, cw)
	if err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "run-script-error: "+err.Error(),
			"txid=%s run script error:%s", common.ToHex(tx.Hash()), err.Error())
	}
	tlog.Debug("execute contract elapsed", "elapsed", time.Since(start),
		"txid", common.ToHex(tx.Hash()))

	tx.RunStep = result.Fuel

	vAddress := make(map[address.KeyID]struct{})
	for _, item := range result.Accounts {
		vAddress[item.KeyID] = struct{}{}
		uid := types.NewKeyUID(item.KeyID)
		_, err := cw.AccountCache.GetAccount(uid)
		if err != nil {
			// the contract pays an address for the first time
			if item.KeyID.IsEmpty() {
				return types.DoS(dosFull, types.UpdateAccountFail, "bad-read-accountdb",
					"read account info error")
			}
			if err := cw.AccountCache.SaveAccount(item); err != nil {
				return types.DoS(dosFull, types.UpdateAccountFail, "bad-write-accountdb",
					"write account info error")
			}
			continue
		}
		if err := cw.AccountCache.SetAccount(uid, item); err != nil {
			return types.DoS(dosFull, types.UpdateAccountFail, "bad-write-accountdb",
				"write account info error")
		}
	}

	for _, appAcct := range result.AppAccounts {
		if keyID, ok := getKeyID(cw.AccountCache, appAcct.AccUserID); ok {
			vAddress[keyID] = struct{}{}
		}
	}

	if err := cw.ContractCache.SetTxRelAccount(tx.Hash(), vAddress); err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-save-txreldb",
			"save tx relate account info to script db error")
	}

	if err := cw.SaveTxAddresses(height, index, []types.UserID{tx.TxUID, tx.AppUID}); err != nil {
		return types.DoS(dosFull, types.WriteAccountFail, "bad-save-txaddrdb",
			"save tx addresses error: %v", err)
	}
	return nil
}

// GetInvolvedKeyIDs the key ids affected by this transaction: sender and
// destination, unioned with the association a prior execution cached under
// the tx hash. No engine call is made; use GetInvolvedKeyIDsDeep when no
// cached association exists and the full set is required.
func (tx *InvokeTx) GetInvolvedKeyIDs(cw *statedb.CacheWrapper) (map[address.KeyID]struct{}, error) {
	keyIDs, err := tx.baseInvolvedKeyIDs(cw)
	if err != nil {
		return nil, err
	}
	cached, ok, err := cw.ContractCache.GetTxRelAccount(tx.Hash())
	if err != nil {
		return nil, err
	}
	if ok {
		for id := range cached {
			keyIDs[id] = struct{}{}
		}
	}
	return keyIDs, nil
}

// GetInvolvedKeyIDsDeep is the fallback extractor: when no cached
// association exists it re-runs the engine against a disposable overlay to
// discover the engine-touched addresses, without double-applying any ledger
// mutation. Re-execution is expensive; the cached path is always preferred.
func (tx *InvokeTx) GetInvolvedKeyIDsDeep(cw *statedb.CacheWrapper, engine vm.Engine, height int64) (map[address.KeyID]struct{}, error) {
	keyIDs, err := tx.baseInvolvedKeyIDs(cw)
	if err != nil {
		return nil, err
	}
	cached, ok, err := cw.ContractCache.GetTxRelAccount(tx.Hash())
	if err != nil {
		return nil, err
	}
	if ok {
		for id := range cached {
			keyIDs[id] = struct{}{}
		}
		return keyIDs, nil
	}

	scratch := cw.Spawn()
	ctx := &vm.Context{
		TxHash:    tx.Hash(),
		Sender:    tx.TxUID,
		AppRegID:  tx.AppUID.RegID(),
		Value:     tx.Value,
		Arguments: tx.Arguments,
		Height:    height,
		FuelRate:  cw.ContractCache.GetFuelRate(),
		RunStep:   tx.RunStep,
	}
	result, err := engine.Execute(ctx, scratch)
	if err != nil {
		return nil, fmt.Errorf("GetInvolvedKeyIDsDeep: %s", err.Error())
	}
	for _, item := range result.Accounts {
		if !item.KeyID.IsEmpty() {
			keyIDs[item.KeyID] = struct{}{}
		}
	}
	for _, appAcct := range result.AppAccounts {
		if keyID, ok := getKeyID(cw.AccountCache, appAcct.AccUserID); ok {
			keyIDs[keyID] = struct{}{}
		}
	}
	return keyIDs, nil
}

func (tx *InvokeTx) baseInvolvedKeyIDs(cw *statedb.CacheWrapper) (map[address.KeyID]struct{}, error) {
	srcKeyID, err := cw.AccountCache.GetKeyID(tx.TxUID)
	if err != nil {
		return nil, err
	}
	desKeyID, err := cw.AccountCache.GetKeyID(tx.AppUID)
	if err != nil {
		return nil, err
	}
	return map[address.KeyID]struct{}{srcKeyID: {}, desKeyID: {}}, nil
}

// ToString fixed-field summary for logs and explorers
func (tx *InvokeTx) ToString(view *account.DB) string {
	return fmt.Sprintf("txType=%s, hash=%s, ver=%d, txUid=%s, appUid=%s, bcoins=%d, llFees=%d, arguments=%s, nValidHeight=%d\n",
		types.GetTxTypeName(tx.TxType), common.ToHex(tx.Hash()), tx.Version, tx.TxUID.String(),
		tx.AppUID.String(), tx.Value, tx.Fee, common.ToHex(tx.Arguments), tx.ValidHeight)
}

// InvokeTxJSON structured explorer/RPC view of an invoke transaction
type InvokeTxJSON struct {
	TxID        string `json:"txid"`
	TxType      string `json:"tx_type"`
	Ver         int32  `json:"ver"`
	RegID       string `json:"regid"`
	Addr        string `json:"addr"`
	AppUID      string `json:"app_uid"`
	AppAddr     string `json:"app_addr"`
	Money       uint64 `json:"money"`
	Fees        uint64 `json:"fees"`
	Arguments   string `json:"arguments"`
	ValidHeight int64  `json:"valid_height"`
}

// ToJSON structured record; read-only
func (tx *InvokeTx) ToJSON(view *account.DB) *InvokeTxJSON {
	srcKeyID, _ := view.GetKeyID(tx.TxUID)
	desKeyID, _ := view.GetKeyID(tx.AppUID)
	return &InvokeTxJSON{
		TxID:        common.ToHex(tx.Hash()),
		TxType:      types.GetTxTypeName(tx.TxType),
		Ver:         tx.Version,
		RegID:       tx.TxUID.String(),
		Addr:        srcKeyID.ToAddress(),
		AppUID:      tx.AppUID.String(),
		AppAddr:     desKeyID.ToAddress(),
		Money:       tx.Value,
		Fees:        tx.Fee,
		Arguments:   common.ToHex(tx.Arguments),
		ValidHeight: tx.ValidHeight,
	}
}
