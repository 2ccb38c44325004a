// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/waykichain/wicc-go/common"
)

// PubKeyLen compressed secp256k1 public key length
const PubKeyLen = 33

// IsPubKeyFullyValid reports whether pub is a parseable compressed secp256k1
// curve point
func IsPubKeyFullyValid(pub []byte) bool {
	if len(pub) != PubKeyLen {
		return false
	}
	_, err := btcec.ParsePubKey(pub)
	return err == nil
}

// VerifySignature checks a DER signature over SHA256d(signBytes) against pub
func VerifySignature(pub []byte, signBytes []byte, sig []byte) bool {
	pk, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false
	}
	s, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	hash := common.Sha2Sum(signBytes)
	return s.Verify(hash[:], pk)
}

// Sign produces the DER signature over SHA256d(signBytes). Wallet key
// handling lives elsewhere; this is the one primitive tests and tools need.
func Sign(priv *btcec.PrivateKey, signBytes []byte) []byte {
	hash := common.Sha2Sum(signBytes)
	return ecdsa.Sign(priv, hash[:]).Serialize()
}
