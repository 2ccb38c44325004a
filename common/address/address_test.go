// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	pub := make([]byte, 33)
	pub[0] = 0x02
	for i := 1; i < len(pub); i++ {
		pub[i] = byte(i)
	}
	id := PubKeyToKeyID(pub)
	require.False(t, id.IsEmpty())

	addr := id.ToAddress()
	require.Equal(t, 34, len(addr))
	assert.NoError(t, CheckAddress(addr))

	back, err := FromAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestCheckAddressBad(t *testing.T) {
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("0OIl"))
	assert.Error(t, CheckAddress("1111111111"))

	// flip one char of a valid address
	addr := PubKeyToAddress([]byte{0x03, 1, 2, 3})
	bad := "W" + addr[1:]
	if bad == addr {
		bad = "X" + addr[1:]
	}
	assert.Error(t, CheckAddress(bad))
}

func TestNewKeyID(t *testing.T) {
	assert.True(t, NewKeyID([]byte{1, 2, 3}).IsEmpty())
	raw := make([]byte, KeyIDLen)
	raw[19] = 7
	id := NewKeyID(raw)
	assert.Equal(t, raw, id.Bytes())
	assert.Equal(t, "0000000000000000000000000000000000000007", id.Hex())
}
