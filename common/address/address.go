// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"

	"github.com/waykichain/wicc-go/common"
)

// NormalVer address version byte of a normal account address
const NormalVer byte = 73

// KeyIDLen raw length of a key id
const KeyIDLen = 20

var (
	// ErrCheckVersion address version mismatch
	ErrCheckVersion = errors.New("ErrCheckVersion")
	// ErrCheckChecksum address checksum mismatch
	ErrCheckChecksum = errors.New("ErrCheckChecksum")
	// ErrAddressLength decoded address has a wrong length
	ErrAddressLength = errors.New("ErrAddressLength")
	// ErrDecodeBase58 not a base58 string
	ErrDecodeBase58 = errors.New("ErrDecodeBase58")
)

var addrCache *lru.Cache
var checkAddrCache *lru.Cache

func init() {
	addrCache, _ = lru.New(10240)
	checkAddrCache, _ = lru.New(10240)
}

// KeyID is the canonical account identifier: RIMP160(SHA256(pubkey)), or of a
// contract reg id's raw bytes for contract accounts.
type KeyID [KeyIDLen]byte

// NewKeyID builds a KeyID from raw bytes, empty KeyID on wrong length
func NewKeyID(b []byte) (id KeyID) {
	if len(b) != KeyIDLen {
		return
	}
	copy(id[:], b)
	return
}

// IsEmpty reports whether the key id is all zero
func (id KeyID) IsEmpty() bool {
	return id == KeyID{}
}

// Bytes raw 20 bytes
func (id KeyID) Bytes() []byte {
	out := make([]byte, KeyIDLen)
	copy(out, id[:])
	return out
}

// Hex lowercase hex form
func (id KeyID) Hex() string {
	return hex.EncodeToString(id[:])
}

// ToAddress base58check form, cached
func (id KeyID) ToAddress() string {
	if value, ok := addrCache.Get(id); ok {
		return value.(string)
	}
	addr := encodeAddress(NormalVer, id)
	addrCache.Add(id, addr)
	return addr
}

func encodeAddress(version byte, id KeyID) string {
	buf := make([]byte, 0, 25)
	buf = append(buf, version)
	buf = append(buf, id[:]...)
	sum := common.Sha2Sum(buf)
	buf = append(buf, sum[:4]...)
	return base58.Encode(buf)
}

// PubKeyToKeyID derives the key id of a public key
func PubKeyToKeyID(pub []byte) KeyID {
	return KeyID(common.Rimp160AfterSha256(pub))
}

// PubKeyToAddress derives the base58check address of a public key
func PubKeyToAddress(pub []byte) string {
	return PubKeyToKeyID(pub).ToAddress()
}

// FromAddress decodes a base58check address back into its key id
func FromAddress(addr string) (KeyID, error) {
	dec := base58.Decode(addr)
	if dec == nil {
		return KeyID{}, ErrDecodeBase58
	}
	if len(dec) != 25 {
		return KeyID{}, ErrAddressLength
	}
	if dec[0] != NormalVer {
		return KeyID{}, ErrCheckVersion
	}
	sum := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sum[:4], dec[21:25]) {
		return KeyID{}, ErrCheckChecksum
	}
	var id KeyID
	copy(id[:], dec[1:21])
	return id, nil
}

// CheckAddress validates a base58check address, cached
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddrCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = FromAddress(addr)
	checkAddrCache.Add(addr, e)
	return
}
