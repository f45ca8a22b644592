package db

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

// Reader reads from a point in time snapshot of the DB.
type Reader struct {
	snapshot *pebble.Snapshot
}

func (r *Reader) Get(key []byte) ([]byte, error) {
	data, closer, err := r.snapshot.Get(key)
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

func (r *Reader) Exist(key []byte) (bool, error) {
	_, err := r.Get(key)
	if errors.Is(err, ErrDataNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Reader) IterateKey(prefix []byte, limit int, reverse bool) ([][]byte, error) {
	iter := r.snapshot.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	return iterateKeyPrefix(iter, limit, reverse)
}

func (r *Reader) Iterate(prefix []byte, limit int, reverse bool) ([]KeyValue, error) {
	iter := r.snapshot.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	return iteratePrefix(iter, limit, reverse)
}

func (r *Reader) Close() error {
	return r.snapshot.Close()
}
