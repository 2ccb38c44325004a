// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
)

// RegIDRawLen raw byte length of a reg id
const RegIDRawLen = 6

// RegID is the compact, immutable alias for an account or contract, minted
// once from the (block height, in-block index) slot of the confirming
// transaction. (height, index) pairs are unique per slot, so reg ids never
// collide across chain history.
type RegID struct {
	Height uint32
	Index  uint16
}

// NewRegID mints the reg id of the (height, index) slot
func NewRegID(height int64, index int32) RegID {
	return RegID{Height: uint32(height), Index: uint16(index)}
}

// IsEmpty reports whether the reg id is unassigned
func (r RegID) IsEmpty() bool {
	return r.Height == 0 && r.Index == 0
}

// Raw 6-byte big-endian form
func (r RegID) Raw() []byte {
	out := make([]byte, RegIDRawLen)
	binary.BigEndian.PutUint32(out[0:4], r.Height)
	binary.BigEndian.PutUint16(out[4:6], r.Index)
	return out
}

// RegIDFromRaw decodes the 6-byte form
func RegIDFromRaw(b []byte) (RegID, error) {
	if len(b) != RegIDRawLen {
		return RegID{}, ErrInvalidRegID
	}
	return RegID{
		Height: binary.BigEndian.Uint32(b[0:4]),
		Index:  binary.BigEndian.Uint16(b[4:6]),
	}, nil
}

// String "height-index" form
func (r RegID) String() string {
	return fmt.Sprintf("%d-%d", r.Height, r.Index)
}

// RegIDFromString parses the "height-index" form
func RegIDFromString(s string) (RegID, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return RegID{}, ErrInvalidRegID
	}
	height, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return RegID{}, ErrInvalidRegID
	}
	index, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return RegID{}, ErrInvalidRegID
	}
	return RegID{Height: uint32(height), Index: uint16(index)}, nil
}

// KeyID derives the one-way account key id of a contract reg id
func (r RegID) KeyID() address.KeyID {
	return address.KeyID(common.Rimp160AfterSha256(r.Raw()))
}
