// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"encoding/binary"
)

// Deterministic binary codec for consensus data: transactions are hashed and
// signed over these bytes and records are persisted as them, so the encoding
// is explicit and stable. Varint length prefixes, big-endian fixed ints.

// Writer accumulates an encoding
type Writer struct {
	buf []byte
}

// NewWriter writer with a small preallocated buffer
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 256)}
}

// Bytes the accumulated encoding
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteUvarint appends an unsigned varint
func (w *Writer) WriteUvarint(v uint64) {
	w.buf = binary.AppendUvarint(w.buf, v)
}

// WriteVarint appends a signed varint
func (w *Writer) WriteVarint(v int64) {
	w.buf = binary.AppendVarint(w.buf, v)
}

// WriteBytes appends a length-prefixed byte string
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteString appends a length-prefixed string
func (w *Writer) WriteString(s string) {
	w.WriteUvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// Reader consumes an encoding produced by Writer
type Reader struct {
	data []byte
	off  int
}

// NewReader reader over data
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Uvarint reads an unsigned varint
func (r *Reader) Uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		return 0, ErrDecode
	}
	r.off += n
	return v, nil
}

// Varint reads a signed varint
func (r *Reader) Varint() (int64, error) {
	v, n := binary.Varint(r.data[r.off:])
	if n <= 0 {
		return 0, ErrDecode
	}
	r.off += n
	return v, nil
}

// Bytes reads a length-prefixed byte string
func (r *Reader) Bytes() ([]byte, error) {
	n, err := r.Uvarint()
	if err != nil {
		return nil, err
	}
	// compare against the remaining input, never n+off: a hostile length
	// prefix near 2^64 must not wrap the guard
	if n > uint64(len(r.data)-r.off) {
		return nil, ErrDecode
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:r.off+int(n)])
	r.off += int(n)
	return out, nil
}

// String reads a length-prefixed string
func (r *Reader) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Empty reports whether all input was consumed
func (r *Reader) Empty() bool {
	return r.off >= len(r.data)
}
