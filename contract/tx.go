// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

/*
Package contract implements validation and execution of the two
contract-bearing transaction kinds: deployment and invocation.

Both kinds move through Unchecked -> Checked -> Executed, or reject at either
checkpoint; there are no further transitions. CheckTx never mutates state.
ExecuteTx issues its writes against the caller's CacheWrapper and relies on
the wrapper's rollback to discard them on failure; it never compensates its
own writes.
*/
package contract

import (
	log "github.com/inconshreveable/log15"

	"github.com/waykichain/wicc-go/types"
)

var tlog = log.New("module", "contract")

// every failed check scores the full peer penalty
const dosFull = 100

func checkTxFeeFloor(fee uint64) *types.TxError {
	if fee < types.GMinTxFee() {
		return types.DoS(dosFull, types.RejectInvalid, "bad-tx-fee-toosmall",
			"tx fee smaller than min tx fee (actual:%d vs need:%d)", fee, types.GMinTxFee())
	}
	return nil
}

// checkSignature verifies sig over signBytes against pub, mapping every
// failure mode onto its stable reason
func checkSignature(signBytes, sig, pub []byte) *types.TxError {
	if len(sig) == 0 || len(sig) > 100 {
		return types.DoS(dosFull, types.RejectInvalid, "bad-tx-sig-size",
			"signature size %d out of range", len(sig))
	}
	if !types.VerifySignature(pub, signBytes, sig) {
		return types.DoS(dosFull, types.RejectInvalid, "bad-tx-signature", "tx signature error")
	}
	return nil
}
