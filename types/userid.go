// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
)

// UserIDType discriminates the identity encodings a transaction may carry
type UserIDType int32

// user id kinds. Check sites switch exhaustively on these; there is no
// implicit fallback between them.
const (
	NullUID UserIDType = iota
	RegUID
	PubKeyUID
	KeyUID
)

// UserID is the polymorphic sender/destination identity of a transaction:
// a reg id, a compressed public key, or a bare address (key id).
type UserID struct {
	ty     UserIDType
	regID  RegID
	pubKey []byte
	keyID  address.KeyID
}

// NewRegUID identity by reg id
func NewRegUID(regID RegID) UserID {
	return UserID{ty: RegUID, regID: regID}
}

// NewPubKeyUID identity by compressed public key
func NewPubKeyUID(pubKey []byte) UserID {
	return UserID{ty: PubKeyUID, pubKey: common.CopyBytes(pubKey)}
}

// NewKeyUID identity by bare address
func NewKeyUID(keyID address.KeyID) UserID {
	return UserID{ty: KeyUID, keyID: keyID}
}

// Type the discriminant
func (u UserID) Type() UserIDType {
	return u.ty
}

// RegID valid only for RegUID
func (u UserID) RegID() RegID {
	return u.regID
}

// PubKey valid only for PubKeyUID
func (u UserID) PubKey() []byte {
	return u.pubKey
}

// KeyID valid only for KeyUID
func (u UserID) KeyID() address.KeyID {
	return u.keyID
}

// String reg ids render as "height-index", public keys as hex, addresses in
// base58check form
func (u UserID) String() string {
	switch u.ty {
	case RegUID:
		return u.regID.String()
	case PubKeyUID:
		return common.ToHex(u.pubKey)
	case KeyUID:
		return u.keyID.ToAddress()
	default:
		return ""
	}
}

// Encode appends the tagged encoding to w
func (u UserID) Encode(w *Writer) {
	w.WriteUvarint(uint64(u.ty))
	switch u.ty {
	case RegUID:
		w.WriteBytes(u.regID.Raw())
	case PubKeyUID:
		w.WriteBytes(u.pubKey)
	case KeyUID:
		w.WriteBytes(u.keyID.Bytes())
	default:
		w.WriteBytes(nil)
	}
}

// DecodeUserID reads a tagged user id from r
func DecodeUserID(r *Reader) (UserID, error) {
	ty, err := r.Uvarint()
	if err != nil {
		return UserID{}, err
	}
	body, err := r.Bytes()
	if err != nil {
		return UserID{}, err
	}
	switch UserIDType(ty) {
	case NullUID:
		return UserID{}, nil
	case RegUID:
		regID, err := RegIDFromRaw(body)
		if err != nil {
			return UserID{}, err
		}
		return NewRegUID(regID), nil
	case PubKeyUID:
		return NewPubKeyUID(body), nil
	case KeyUID:
		if len(body) != address.KeyIDLen {
			return UserID{}, ErrInvalidUserID
		}
		return NewKeyUID(address.NewKeyID(body)), nil
	default:
		return UserID{}, ErrInvalidUserID
	}
}
