package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
)

func TestBatch(t *testing.T) {
	for _, database := range openDBs(t) {
		batch := database.NewBatch()

		key1 := crypto.RandomBytes(38)
		val1 := crypto.RandomBytes(100)
		key2 := crypto.RandomBytes(38)
		val2 := crypto.RandomBytes(100)

		updated := crypto.RandomBytes(100)

		assert.NoError(t, batch.Set(key1, val1))
		assert.NoError(t, batch.Set(key2, val2))
		assert.NoError(t, batch.Set(key1, updated))

		_, err := database.Get(key2)
		assert.ErrorIs(t, err, ErrDataNotFound)

		assert.NoError(t, database.Write(batch))
		assert.NoError(t, batch.Close())

		val, err := database.Get(key1)
		assert.NoError(t, err)
		assert.Equal(t, updated, val)

		val, err = database.Get(key2)
		assert.NoError(t, err)
		assert.Equal(t, val2, val)
	}
}
