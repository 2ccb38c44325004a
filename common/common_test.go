// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0x01, 0xab, 0xff}
	s := ToHex(b)
	assert.Equal(t, "01abff", s)

	back, err := FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestFromHexTolerant(t *testing.T) {
	for _, s := range []string{"0x01abff", "0X01abff", "1abff"} {
		back, err := FromHex(s)
		require.NoError(t, err, s)
		assert.Equal(t, []byte{0x01, 0xab, 0xff}, back, s)
	}
	_, err := FromHex("zz")
	assert.Error(t, err)
}

func TestSha2Sum(t *testing.T) {
	// SHA256d of the empty string, a fixed vector
	got := Sha2Sum(nil)
	assert.Equal(t,
		"5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		ToHex(got[:]))
}

func TestRimp160AfterSha256(t *testing.T) {
	// HASH160 of the empty string, a fixed vector
	got := Rimp160AfterSha256(nil)
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", ToHex(got[:]))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	assert.Equal(t, src, dst)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
}
