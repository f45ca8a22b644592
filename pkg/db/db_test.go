package db

import (
	"encoding/hex"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
)

func randomTempDir() string {
	return path.Join(os.TempDir(), hex.EncodeToString(crypto.RandomBytes(10)))
}

type dbInterface interface {
	Get(key []byte) ([]byte, error)
	Exist(key []byte) (bool, error)
}

var testData = []struct {
	Key   []byte
	Value []byte
}{
	{
		Key:   []byte{0, 0},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{0, 1},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{1, 0},
		Value: crypto.RandomBytes(100),
	},
	{
		Key:   []byte{1, 1},
		Value: crypto.RandomBytes(100),
	},
}

func openDBs(t *testing.T) []*DB {
	dir := randomTempDir()
	t.Cleanup(func() { os.RemoveAll(dir) })
	diskDB, err := NewDB(dir)
	assert.NoError(t, err)
	inmemoryDB, err := NewInMemoryDB()
	assert.NoError(t, err)
	t.Cleanup(func() {
		diskDB.Close()
		inmemoryDB.Close()
	})
	for _, database := range []*DB{diskDB, inmemoryDB} {
		for _, kv := range testData {
			assert.NoError(t, database.Set(kv.Key, kv.Value))
		}
	}
	return []*DB{diskDB, inmemoryDB}
}

func assertReads(t *testing.T, dbi dbInterface) {
	fetched, err := dbi.Get(testData[0].Key)
	assert.NoError(t, err)
	assert.Equal(t, testData[0].Value, fetched)

	_, err = dbi.Get([]byte{9, 9})
	assert.ErrorIs(t, err, ErrDataNotFound)

	exist, err := dbi.Exist(testData[0].Key)
	assert.NoError(t, err)
	assert.Equal(t, true, exist)

	exist, err = dbi.Exist(crypto.RandomBytes(5))
	assert.NoError(t, err)
	assert.Equal(t, false, exist)
}

func TestDB(t *testing.T) {
	for _, database := range openDBs(t) {
		assertReads(t, database)
	}
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, []byte{1}, upperBound([]byte{0}))
	assert.Equal(t, []byte{1}, upperBound([]byte{0, 255}))
	assert.Nil(t, upperBound([]byte{255, 255}))
}
