// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"fmt"

	"github.com/waykichain/wicc-go/account"
	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
	"github.com/waykichain/wicc-go/statedb"
	"github.com/waykichain/wicc-go/types"
)

// DeployTx registers a new contract: it debits the declared fee from the
// sender and creates the contract's account and registry records atomically.
type DeployTx struct {
	types.TxBase
	Payload types.ContractPayload
}

// NewDeployTx unsigned deploy transaction
func NewDeployTx(sender types.UserID, fee uint64, validHeight int64, code []byte, memo string) *DeployTx {
	return &DeployTx{
		TxBase: types.TxBase{
			TxType:      types.TxContractDeploy,
			Version:     types.CurrentVersion,
			TxUID:       sender,
			Fee:         fee,
			ValidHeight: validHeight,
		},
		Payload: types.ContractPayload{Code: common.CopyBytes(code), Memo: memo},
	}
}

// SignBytes the deterministic encoding covered by the signature
func (tx *DeployTx) SignBytes() []byte {
	w := types.NewWriter()
	tx.EncodeBase(w)
	w.WriteBytes(tx.Payload.Code)
	w.WriteString(tx.Payload.Memo)
	return w.Bytes()
}

// Encode full wire encoding, signature last
func (tx *DeployTx) Encode() []byte {
	w := types.NewWriter()
	w.WriteBytes(tx.SignBytes())
	w.WriteBytes(tx.Signature)
	return w.Bytes()
}

// DecodeDeployTx inverse of Encode
func DecodeDeployTx(data []byte) (*DeployTx, error) {
	r := types.NewReader(data)
	body, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	sig, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	tx := &DeployTx{}
	br := types.NewReader(body)
	if err := tx.DecodeBase(br); err != nil {
		return nil, err
	}
	if tx.TxType != types.TxContractDeploy {
		return nil, types.ErrDecode
	}
	if tx.Payload.Code, err = br.Bytes(); err != nil {
		return nil, err
	}
	if tx.Payload.Memo, err = br.String(); err != nil {
		return nil, err
	}
	tx.Signature = sig
	return tx, nil
}

// Hash transaction id: SHA256d over the full encoding
func (tx *DeployTx) Hash() []byte {
	h := common.Sha2Sum(tx.Encode())
	return h[:]
}

// Size serialized size in bytes
func (tx *DeployTx) Size() int {
	return len(tx.Encode())
}

// CheckTx admission checks; read-only
func (tx *DeployTx) CheckTx(height int64, cw *statedb.CacheWrapper) error {
	if err := checkTxFeeFloor(tx.Fee); err != nil {
		return err
	}
	if tx.TxUID.Type() != types.RegUID {
		return types.DoS(dosFull, types.RejectInvalid, "txUid-type-error",
			"deploy txUid must be a reg id")
	}
	if !tx.Payload.IsValid() {
		return types.DoS(dosFull, types.RejectInvalid, "vmscript-invalid", "contract is invalid")
	}

	fuelRate := cw.ContractCache.GetFuelRate()
	if err := checkFuelFee(tx.Fee, uint64(tx.Payload.Size()), fuelRate); err != nil {
		return err
	}
	if err := checkLegacyFeePerKB(height, tx.Fee, uint64(tx.Payload.Size()), fuelRate, tx.Size()); err != nil {
		return err
	}

	acct, err := cw.AccountCache.GetAccount(tx.TxUID)
	if err != nil {
		return types.DoS(dosFull, types.RejectInvalid, "bad-getaccount",
			"get account failed, uid=%s", tx.TxUID.String())
	}
	if !acct.HaveOwnerPubKey() {
		return types.DoS(dosFull, types.RejectInvalid, "bad-account-unregistered",
			"account unregistered")
	}

	if err := checkSignature(tx.SignBytes(), tx.Signature, acct.OwnerPubKey); err != nil {
		return err
	}
	return nil
}

// ExecuteTx applies the deployment at the (height, index) slot. The fee
// debit, contract account creation and contract record persist are one
// atomic unit: on any failure the caller rolls the overlay back, so an
// intermediate sender save leaves no trace.
func (tx *DeployTx) ExecuteTx(height int64, index int32, cw *statedb.CacheWrapper) error {
	acct, err := cw.AccountCache.GetAccount(tx.TxUID)
	if err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-read-accountdb",
			"read account of uid %s error", tx.TxUID.String())
	}

	if !acct.OperateBalance(types.GCoinSymbol(), types.SubFree, tx.Fee) {
		return types.DoS(dosFull, types.UpdateAccountFail, "operate-account-failed",
			"operate account failed, uid=%s", tx.TxUID.String())
	}
	if err := cw.AccountCache.SetAccount(types.NewKeyUID(acct.KeyID), acct); err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-save-accountdb",
			"save account info error")
	}

	// mint the contract's identity from the confirmed slot
	contractRegID := types.NewRegID(height, index)
	contractAcct := types.NewAccount(contractRegID.KeyID())
	contractAcct.RegID = contractRegID

	if err := cw.AccountCache.SaveAccount(contractAcct); err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-save-scriptdb",
			"create account for contract id %s error", contractRegID.String())
	}
	contract := types.NewContract(types.LuaVM, tx.Payload.Code, "", tx.Payload.Memo)
	if err := cw.ContractCache.SaveContract(contractRegID, contract); err != nil {
		return types.DoS(dosFull, types.UpdateAccountFail, "bad-save-scriptdb",
			"save code for contract id %s error", contractRegID.String())
	}

	tx.RunStep = uint64(tx.Payload.Size())

	if err := cw.SaveTxAddresses(height, index, []types.UserID{tx.TxUID}); err != nil {
		return types.DoS(dosFull, types.WriteAccountFail, "bad-save-txaddrdb",
			"save tx addresses error: %v", err)
	}
	tlog.Debug("contract deployed", "regid", contractRegID.String(), "codesize", tx.Payload.Size())
	return nil
}

// GetInvolvedKeyIDs the key ids affected by this transaction: the sender
func (tx *DeployTx) GetInvolvedKeyIDs(cw *statedb.CacheWrapper) (map[address.KeyID]struct{}, error) {
	keyID, err := cw.AccountCache.GetKeyID(tx.TxUID)
	if err != nil {
		return nil, err
	}
	return map[address.KeyID]struct{}{keyID: {}}, nil
}

// ToString fixed-field summary for logs and explorers
func (tx *DeployTx) ToString(view *account.DB) string {
	keyID, _ := view.GetKeyID(tx.TxUID)
	return fmt.Sprintf("txType=%s, hash=%s, ver=%d, accountId=%s, keyid=%s, llFees=%d, nValidHeight=%d\n",
		types.GetTxTypeName(tx.TxType), common.ToHex(tx.Hash()), tx.Version, tx.TxUID.String(),
		keyID.Hex(), tx.Fee, tx.ValidHeight)
}

// DeployTxJSON structured explorer/RPC view of a deploy transaction
type DeployTxJSON struct {
	TxID         string `json:"txid"`
	TxType       string `json:"tx_type"`
	Ver          int32  `json:"ver"`
	RegID        string `json:"regid"`
	Addr         string `json:"addr"`
	ContractCode string `json:"contract_code"`
	ContractMemo string `json:"contract_memo"`
}

// ToJSON structured record; read-only
func (tx *DeployTx) ToJSON(view *account.DB) *DeployTxJSON {
	keyID, _ := view.GetKeyID(tx.TxUID)
	return &DeployTxJSON{
		TxID:         common.ToHex(tx.Hash()),
		TxType:       types.GetTxTypeName(tx.TxType),
		Ver:          tx.Version,
		RegID:        tx.TxUID.String(),
		Addr:         keyID.ToAddress(),
		ContractCode: string(tx.Payload.Code),
		ContractMemo: tx.Payload.Memo,
	}
}
