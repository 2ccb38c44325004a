// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import "errors"

var (
	ErrAccountNotExist  = errors.New("ErrAccountNotExist")
	ErrContractNotExist = errors.New("ErrContractNotExist")
	ErrNoBalance        = errors.New("ErrNoBalance")
	ErrAmount           = errors.New("ErrAmount")
	ErrInvalidUserID    = errors.New("ErrInvalidUserID")
	ErrEmptyKeyID       = errors.New("ErrEmptyKeyID")
	ErrInvalidRegID     = errors.New("ErrInvalidRegID")
	ErrDecode           = errors.New("ErrDecode")
	ErrSignature        = errors.New("ErrSignature")
)
