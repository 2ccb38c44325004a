// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

/*
Package vm declares the contract-execution engine contract. The interpreter
itself is an external collaborator: the state machines hand it a run context
and the transactional view, and apply whatever deltas it returns. The engine
bounds itself by fuel and reports failure instead of running unboundedly.
*/
package vm

import (
	"github.com/waykichain/wicc-go/statedb"
	"github.com/waykichain/wicc-go/types"
)

// Context is the run context of one invocation
type Context struct {
	TxHash []byte
	// Sender the invoking identity as carried by the transaction
	Sender types.UserID
	// AppRegID the invoked contract
	AppRegID types.RegID
	// Value principal already transferred by the state machine; the engine
	// never moves it again
	Value uint64
	// Arguments opaque call arguments
	Arguments []byte
	Height    int64
	FuelRate  uint64
	// RunStep step count accumulated before the call
	RunStep uint64
}

// AppAccount is one application-scoped sub-account touched by a run: state
// private to one contract and one external user identity. AccUserID is the
// owner in its string form, either a 6-byte raw reg id or a 34-char address.
type AppAccount struct {
	AccUserID string
	Values    map[string][]byte
}

// Result is what a successful run returns. Accounts holds owned copies of
// every record the run created or mutated; the state machine merges them,
// it never shares ownership with engine internals.
type Result struct {
	Fuel        uint64
	Accounts    []*types.Account
	AppAccounts []*AppAccount
}

// Engine executes contract code deterministically against the given view.
// A non-nil error is a failed run; its text is threaded verbatim into the
// transaction's rejection reason.
type Engine interface {
	Execute(ctx *Context, cw *statedb.CacheWrapper) (*Result, error)
}
