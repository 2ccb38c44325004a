// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import "fmt"

// TxError is the validation/execution rejection payload. Every failed check
// returns exactly one TxError and callers propagate it like any other error;
// no shared validation state is mutated anywhere.
//
// Code is a stable machine-readable reason ("fee-too-litter-to-afford-fuel",
// "bad-account-unregistered", ...) consumed by operators and tooling; it must
// not be reworded. DoSScore is the peer penalty suggested to the caller.
type TxError struct {
	Reject   int32
	Code     string
	Msg      string
	DoSScore int32
}

func (e *TxError) Error() string {
	if e.Msg == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// DoS builds a TxError the way the check sites read: severity first, then
// the reject stage, the stable reason code, and a diagnostic message.
func DoS(score int32, reject int32, code string, format string, args ...interface{}) *TxError {
	return &TxError{
		Reject:   reject,
		Code:     code,
		Msg:      fmt.Sprintf(format, args...),
		DoSScore: score,
	}
}

// IsTxError unwraps err as a *TxError if it is one
func IsTxError(err error) (*TxError, bool) {
	te, ok := err.(*TxError)
	return te, ok
}
