package db

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// NewInMemoryDB returns new instance of in-memory db.
func NewInMemoryDB() (*DB, error) {
	pebbleDB, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open in-memory database")
	}
	return &DB{
		pebbleDB: pebbleDB,
	}, nil
}
