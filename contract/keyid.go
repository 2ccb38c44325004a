// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import (
	"github.com/waykichain/wicc-go/account"
	"github.com/waykichain/wicc-go/common/address"
	"github.com/waykichain/wicc-go/types"
)

// addressStrLen length of a base58check address string
const addressStrLen = 34

// getKeyID resolves an indirect user identifier surfaced by contract
// execution output to a key id. The encoding is distinguished purely by
// length: 6 bytes is a raw reg id resolved through the ledger view, 34 chars
// is a direct address. Anything else, and an empty resolution, fails.
func getKeyID(view *account.DB, userIDStr string) (address.KeyID, bool) {
	var keyID address.KeyID
	switch len(userIDStr) {
	case types.RegIDRawLen:
		regID, err := types.RegIDFromRaw([]byte(userIDStr))
		if err != nil {
			return address.KeyID{}, false
		}
		keyID, err = view.GetKeyID(types.NewRegUID(regID))
		if err != nil {
			return address.KeyID{}, false
		}
	case addressStrLen:
		var err error
		keyID, err = address.FromAddress(userIDStr)
		if err != nil {
			return address.KeyID{}, false
		}
	default:
		return address.KeyID{}, false
	}

	if keyID.IsEmpty() {
		return address.KeyID{}, false
	}
	return keyID, true
}
