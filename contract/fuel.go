// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package contract

import "github.com/waykichain/wicc-go/types"

// GetFuel the fuel cost of runStep steps at fuelRate: one rate unit per
// started block of 100 steps. Monotone non-decreasing in runStep for a fixed
// rate.
func GetFuel(runStep uint64, fuelRate uint64) uint64 {
	if runStep == 0 {
		return 0
	}
	return (runStep + 99) / 100 * fuelRate
}

// checkFuelFee rejects a fee that cannot cover the fuel of runStep steps.
// A fee exactly equal to the fuel cost passes.
func checkFuelFee(fee uint64, runStep uint64, fuelRate uint64) *types.TxError {
	fuel := GetFuel(runStep, fuelRate)
	if fee < fuel {
		return types.DoS(dosFull, types.RejectInvalid, "fee-too-litter-to-afford-fuel",
			"fee too litter to afford fuel (actual:%d vs need:%d)", fee, fuel)
	}
	return nil
}

// checkLegacyFeePerKB is the version-gated relay floor: consensus only while
// the feature fork version at height equals the R2 marker, inert before and
// after. The float arithmetic is consensus and must not be reordered.
func checkLegacyFeePerKB(height int64, fee uint64, runStep uint64, fuelRate uint64, txSize int) *types.TxError {
	if types.GetFeatureForkVersion(height) != types.MajorVerR2 {
		return nil
	}
	fuel := GetFuel(runStep, fuelRate)
	// clamp: a fee below the fuel cost leaves no surplus, and the uint
	// subtraction must never wrap
	var surplus uint64
	if fee > fuel {
		surplus = fee - fuel
	}
	feePerKb := float64(surplus) / (float64(txSize) / 1000.0)
	if feePerKb < float64(types.GMinRelayTxFee()) {
		return types.DoS(dosFull, types.RejectInvalid, "fee-too-litter-in-fees/Kb",
			"fee too litter in fees/Kb (actual:%.4f vs need:%d)", feePerKb, types.GMinRelayTxFee())
	}
	return nil
}
