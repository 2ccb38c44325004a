// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import "github.com/waykichain/wicc-go/common"

// ContractPayload is the deploy transaction payload: bytecode plus a human
// memo.
type ContractPayload struct {
	Code []byte
	Memo string
}

// IsValid is the static well-formedness predicate applied at admission time:
// size and structure only, never logic.
func (p *ContractPayload) IsValid() bool {
	if len(p.Code) == 0 || len(p.Code) > MaxContractCodeSize {
		return false
	}
	return len(p.Memo) <= MaxContractMemoSize
}

// Size code size, charged as the deploy transaction's run step count
func (p *ContractPayload) Size() int {
	return len(p.Code)
}

// Contract is one registry record, identified by the reg id minted at
// deployment.
type Contract struct {
	VMKind     VMType
	Code       []byte
	SourceInfo string
	Memo       string
}

// NewContract registry record for code deployed under memo
func NewContract(kind VMType, code []byte, sourceInfo, memo string) *Contract {
	return &Contract{
		VMKind:     kind,
		Code:       common.CopyBytes(code),
		SourceInfo: sourceInfo,
		Memo:       memo,
	}
}

// Encode deterministic binary form
func (c *Contract) Encode() []byte {
	w := NewWriter()
	w.WriteUvarint(uint64(c.VMKind))
	w.WriteBytes(c.Code)
	w.WriteString(c.SourceInfo)
	w.WriteString(c.Memo)
	return w.Bytes()
}

// DecodeContract inverse of Encode
func DecodeContract(data []byte) (*Contract, error) {
	r := NewReader(data)
	kind, err := r.Uvarint()
	if err != nil {
		return nil, err
	}
	c := &Contract{VMKind: VMType(kind)}
	if c.Code, err = r.Bytes(); err != nil {
		return nil, err
	}
	if c.SourceInfo, err = r.String(); err != nil {
		return nil, err
	}
	if c.Memo, err = r.String(); err != nil {
		return nil, err
	}
	return c, nil
}
