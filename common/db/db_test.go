// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBGetSet(t *testing.T, db DB) {
	_, err := db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestGoMemDB(t *testing.T) {
	db, err := NewGoMemDB("memdb", "", 0)
	require.NoError(t, err)
	defer db.Close()
	testDBGetSet(t, db)
}

func TestGoLevelDB(t *testing.T) {
	db, err := NewGoLevelDB("testdb", t.TempDir(), 16)
	require.NoError(t, err)
	defer db.Close()
	testDBGetSet(t, db)
}

func TestNewDB(t *testing.T) {
	db := NewDB("testdb", MemDBBackendStr, "", 0)
	defer db.Close()
	require.NoError(t, db.Set([]byte("a"), []byte("b")))

	assert.Panics(t, func() { NewDB("x", "nosuchbackend", "", 0) })
}

func TestMemDBValueCopied(t *testing.T) {
	db, _ := NewGoMemDB("memdb", "", 0)
	val := []byte("mutable")
	require.NoError(t, db.Set([]byte("k"), val))
	val[0] = 'X'
	got, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), got)
}
