package db

import (
	"github.com/cockroachdb/pebble"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

func iteratePrefix(iter *pebble.Iterator, limit int, reverse bool) ([]KeyValue, error) {
	var data []KeyValue
	walk(iter, limit, reverse, func() {
		data = append(data, &keyValue{
			key:   bytes.Copy(iter.Key()),
			value: bytes.Copy(iter.Value()),
		})
	})
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return data, nil
}

func iterateKeyPrefix(iter *pebble.Iterator, limit int, reverse bool) ([][]byte, error) {
	var data [][]byte
	walk(iter, limit, reverse, func() {
		data = append(data, bytes.Copy(iter.Key()))
	})
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return data, nil
}

// walk calls visit for each position of iter until limit is reached. limit -1 visits all.
func walk(iter *pebble.Iterator, limit int, reverse bool, visit func()) {
	first, next := iter.First, iter.Next
	if reverse {
		first, next = iter.Last, iter.Prev
	}
	count := 0
	for valid := first(); valid; valid = next() {
		visit()
		count++
		if limit != -1 && count >= limit {
			return
		}
	}
}
