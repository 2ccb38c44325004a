// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

// feature fork versions. The legacy per-KB relay fee check is consensus only
// while the active version equals MajorVerR2; it is inert before and after.
const (
	MajorVerR1 int32 = 1
	MajorVerR2 int32 = 2
	MajorVerR3 int32 = 3
)

// GetFeatureForkVersion the feature fork version active at height
func GetFeatureForkVersion(height int64) int32 {
	cfg := GetConfig()
	switch {
	case height >= cfg.ForkV3Height:
		return MajorVerR3
	case height >= cfg.ForkV2Height:
		return MajorVerR2
	default:
		return MajorVerR1
	}
}
