// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package common

import (
	"encoding/hex"
	"errors"
)

// ErrHexLength invalid hex string length
var ErrHexLength = errors.New("ErrHexLength")

// ToHex []byte -> hex
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex hex -> []byte, tolerates a 0x prefix and odd length
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
	}
	return hex.DecodeString(s)
}

// HashHex hash []byte -> fixed 64 char hex
func HashHex(d []byte) string {
	var buf [64]byte
	hex.Encode(buf[:], d)
	return string(buf[:])
}

// CopyBytes Returns an exact copy of the provided bytes
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return
}
