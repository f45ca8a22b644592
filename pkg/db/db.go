// Package db wraps pebble with the few operations the account store needs:
// point reads and writes, atomic batches and prefix scans over snapshots.
package db

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

var (
	ErrDataNotFound = errors.New("data was not found")
)

// upperBound returns the smallest key greater than every key with prefix b, or nil when none exists.
func upperBound(b []byte) []byte {
	end := make([]byte, len(b))
	copy(end, b)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil // no upper-bound
}

// KeyValue is one entry returned by a prefix scan.
type KeyValue interface {
	Key() []byte
	Value() []byte
}

type keyValue struct {
	key   []byte
	value []byte
}

func (k *keyValue) Key() []byte   { return k.key }
func (k *keyValue) Value() []byte { return k.value }

// DB is a pebble database. Writes are synced to disk before they return.
type DB struct {
	pebbleDB *pebble.DB
}

func NewDB(path string) (*DB, error) {
	pebbleDB, err := pebble.Open(path, &pebble.Options{
		ErrorIfExists: false,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", path)
	}
	db := &DB{
		pebbleDB: pebbleDB,
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.pebbleDB.Close()
}

// Get returns a copy of the value stored at key or ErrDataNotFound.
func (db *DB) Get(key []byte) ([]byte, error) {
	data, closer, err := db.pebbleDB.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrDataNotFound
		}
		return nil, err
	}
	copied := bytes.Copy(data)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return copied, nil
}

func (db *DB) Exist(key []byte) (bool, error) {
	_, err := db.Get(key)
	if errors.Is(err, ErrDataNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (db *DB) Set(key, value []byte) error {
	return db.pebbleDB.Set(key, value, pebble.Sync)
}

func (db *DB) NewBatch() *Batch {
	return &Batch{
		inner: db.pebbleDB.NewBatch(),
		mutex: new(sync.Mutex),
	}
}

// NewReader opens a snapshot. Callers must Close it.
func (db *DB) NewReader() *Reader {
	snapshot := db.pebbleDB.NewSnapshot()
	return &Reader{
		snapshot: snapshot,
	}
}

// Write applies all the operations of the batch atomically.
func (db *DB) Write(batch *Batch) error {
	batch.mutex.Lock()
	defer batch.mutex.Unlock()
	return db.pebbleDB.Apply(batch.inner, pebble.Sync)
}
