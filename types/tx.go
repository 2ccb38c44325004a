// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

// TxBase carries the fields every transaction kind shares. A transaction is
// immutable once constructed except for RunStep, the step/fuel accumulator
// the execution path fills in.
type TxBase struct {
	TxType      int32
	Version     int32
	TxUID       UserID
	Fee         uint64
	ValidHeight int64
	Signature   []byte

	RunStep uint64
}

// CurrentVersion protocol version stamped on new transactions
const CurrentVersion int32 = 1

// EncodeBase appends the unsigned common fields to w, in wire order
func (b *TxBase) EncodeBase(w *Writer) {
	w.WriteUvarint(uint64(b.TxType))
	w.WriteUvarint(uint64(b.Version))
	b.TxUID.Encode(w)
	w.WriteUvarint(b.Fee)
	w.WriteVarint(b.ValidHeight)
}

// DecodeBase reads the unsigned common fields from r
func (b *TxBase) DecodeBase(r *Reader) error {
	ty, err := r.Uvarint()
	if err != nil {
		return err
	}
	b.TxType = int32(ty)
	ver, err := r.Uvarint()
	if err != nil {
		return err
	}
	b.Version = int32(ver)
	if b.TxUID, err = DecodeUserID(r); err != nil {
		return err
	}
	if b.Fee, err = r.Uvarint(); err != nil {
		return err
	}
	if b.ValidHeight, err = r.Varint(); err != nil {
		return err
	}
	return nil
}
