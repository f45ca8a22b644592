// Package state defines the persisted account records of the breeding program.
//
// Each record has a fixed length and a leading initialized flag:
//
//	PlatformData   is_initialized(1) treasury(32) platform_fee(8)                                      41 bytes
//	NFTData        is_initialized(1) mint(32) last_breed_timestamp(8) breed_count(8)                   49 bytes
//	ChildNFTData   is_initialized(1) child_mint(32) parent_one_mint(32) parent_two_mint(32) mint_time(8) 105 bytes
//	BreedingState  is_initialized(1) child_mint(32) random_value(8)                                    41 bytes
//
// Integers are little-endian. Identifiers are stored verbatim.
package state

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrUninitialized is returned by Unpack when the record flag is not set.
	ErrUninitialized = errors.New("record is not initialized")
	// ErrUnknownKind is returned when a record kind name or value is not recognized.
	ErrUnknownKind = errors.New("unknown record kind")
)

// Record is a fixed-length account record.
type Record interface {
	Kind() Kind
	Len() int
	Initialized() bool
	// Decode reads the leading Len bytes of src. The record is left unchanged on error.
	Decode(src []byte) error
	// Encode writes the record into the leading Len bytes of dst.
	Encode(dst []byte) error
}

type recordPtr[T any] interface {
	*T
	Record
}

// UnpackUnchecked decodes a record without looking at the initialized flag.
func UnpackUnchecked[T any, PT recordPtr[T]](src []byte) (*T, error) {
	record := PT(new(T))
	if err := record.Decode(src); err != nil {
		return nil, err
	}
	return (*T)(record), nil
}

// Unpack decodes a record and fails with ErrUninitialized if it is not initialized.
func Unpack[T any, PT recordPtr[T]](src []byte) (*T, error) {
	record, err := UnpackUnchecked[T, PT](src)
	if err != nil {
		return nil, err
	}
	if !PT(record).Initialized() {
		return nil, errors.Wrapf(ErrUninitialized, "%s", PT(record).Kind())
	}
	return record, nil
}

// Pack encodes the record into dst.
func Pack(record Record, dst []byte) error {
	return record.Encode(dst)
}

// Bytes returns a new buffer holding exactly the record encoding.
func Bytes(record Record) []byte {
	result := make([]byte, record.Len())
	if err := record.Encode(result); err != nil {
		// result is always large enough.
		panic(err)
	}
	return result
}
