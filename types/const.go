// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

// MaxHeight beyond any reachable block height. Forks default here so that new
// feature forks stay disabled until a chain explicitly schedules them.
const MaxHeight = 10000000000000000

// Coin base units per whole coin
const Coin int64 = 100000000

// transaction type tags
const (
	TxContractDeploy int32 = 4
	TxContractInvoke int32 = 5
)

// GetTxTypeName readable name of a transaction type tag
func GetTxTypeName(ty int32) string {
	switch ty {
	case TxContractDeploy:
		return "CONTRACT_DEPLOY_TX"
	case TxContractInvoke:
		return "CONTRACT_INVOKE_TX"
	default:
		return "UNKNOWN_TX"
	}
}

// reject stage codes carried by TxError. Admission failures use
// RejectInvalid; execution failures carry the db stage that failed.
const (
	RejectInvalid     int32 = 0x10
	ReadAccountFail   int32 = 0x51
	UpdateAccountFail int32 = 0x52
	WriteAccountFail  int32 = 0x53
)

// payload limits checked at admission time
const (
	// MaxContractCodeSize upper bound of deployed bytecode
	MaxContractCodeSize = 65536
	// MaxContractMemoSize upper bound of the deploy memo
	MaxContractMemoSize = 512
	// MaxContractArgumentSize upper bound of invoke call arguments
	MaxContractArgumentSize = 4096
)

// VMType tags the interpreter a contract record targets
type VMType int32

// vm kinds
const (
	LuaVM VMType = 1
)
