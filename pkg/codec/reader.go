package codec

import (
	"github.com/cockroachdb/errors"
)

const (
	msb8Bit  = 0x80
	rest8Bit = 0x7f
)

// Reader is responsible for reading data in protobuf protocol.
type Reader struct {
	index int
	data  []byte
}

// NewReader returns reader with the data given.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
	}
}

// ReadUInt reads uint if the field number matches.
// When strict is false, a missing field yields zero.
func (r *Reader) ReadUInt(fieldNumber int, strict bool) (uint64, error) {
	ok, err := r.check(fieldNumber, wireTypeVarint)
	if err != nil || !ok {
		return 0, r.tolerate(err, strict)
	}
	return r.readUInt()
}

// ReadBytes reads a length prefixed byte slice if the field number matches.
func (r *Reader) ReadBytes(fieldNumber int, strict bool) ([]byte, error) {
	ok, err := r.check(fieldNumber, wireTypeBytes)
	if err != nil || !ok {
		return []byte{}, r.tolerate(err, strict)
	}
	return r.readBytes()
}

// HasUnreadBytes returns true if the reader did not reach the end of data.
func (r *Reader) HasUnreadBytes() bool {
	return r.index != len(r.data)
}

func (r *Reader) tolerate(err error, strict bool) error {
	if err == nil {
		return nil
	}
	missing := errors.Is(err, ErrFieldNumberNotFound) || errors.Is(err, ErrUnexpectedFieldNumber)
	if missing && !strict {
		return nil
	}
	return err
}

func (r *Reader) readUInt() (uint64, error) {
	result, size, err := readUint(r.data, r.index)
	if err != nil {
		return 0, err
	}
	r.index += size
	return result, nil
}

func (r *Reader) readBytes() ([]byte, error) {
	size, err := r.readUInt()
	if err != nil {
		return nil, err
	}
	remaining := len(r.data) - r.index
	if size > uint64(remaining) {
		return nil, errors.Wrapf(ErrInvalidData, "byte size %d exceeds remaining length %d", size, remaining)
	}
	result := make([]byte, int(size))
	copy(result, r.data[r.index:r.index+int(size)])
	r.index += int(size)
	return result, nil
}

func (r *Reader) check(fieldNumber, wireType int) (bool, error) {
	if r.index >= len(r.data) {
		return false, ErrFieldNumberNotFound
	}
	key, size, err := readUint(r.data, r.index)
	if err != nil {
		return false, err
	}
	nextFieldNumber, nextWireType, err := readKey(key)
	if err != nil {
		return false, err
	}
	if nextFieldNumber != fieldNumber {
		return false, ErrUnexpectedFieldNumber
	}
	if nextWireType != wireType {
		return false, ErrInvalidData
	}
	r.index += size
	return true, nil
}

func readUint(data []byte, offset int) (uint64, int, error) {
	result := uint64(0)
	index := offset
	for shift := 0; shift < 64; shift += 7 {
		if index >= len(data) {
			return 0, 0, ErrInvalidData
		}
		bit := uint64(data[index])
		index++
		if index == offset+10 && bit > 0x01 {
			return 0, 0, ErrOutOfRange
		}
		result |= (bit & rest8Bit) << shift
		if bit&msb8Bit == 0 {
			if varintShortestSize(result) != index-offset {
				return 0, 0, ErrUnnecessaryLeadingBytes
			}
			return result, index - offset, nil
		}
	}
	return 0, 0, ErrNoTerminate
}

func varintShortestSize(data uint64) int {
	size := 1
	for data >= msb8Bit {
		data >>= 7
		size++
	}
	return size
}
