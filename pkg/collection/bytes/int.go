package bytes

import "encoding/binary"

// FromUint32 converts uint32 to big-endian byte slice with length 4.
func FromUint32(val uint32) []byte {
	result := make([]byte, 4)
	binary.BigEndian.PutUint32(result, val)
	return result
}

// FromUint64LE converts uint64 to little-endian byte slice with length 8.
func FromUint64LE(val uint64) []byte {
	result := make([]byte, 8)
	binary.LittleEndian.PutUint64(result, val)
	return result
}

// ToUint64LE reads the first 8 bytes as little-endian uint64. bytes[8:] will be ignored.
func ToUint64LE(val []byte) uint64 {
	return binary.LittleEndian.Uint64(val)
}
