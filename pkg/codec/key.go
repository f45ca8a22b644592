package codec

import "encoding/binary"

const (
	wireTypeVarint = 0
	wireTypeBytes  = 2
)

// readKey splits a field key into field number and wire type.
func readKey(val uint64) (int, int, error) {
	wireType := int(val & 7)
	if wireType != wireTypeVarint && wireType != wireTypeBytes {
		return 0, 0, ErrInvalidData
	}
	return int(val >> 3), wireType, nil
}

func appendKey(dst []byte, wireType int, fieldNumber int) []byte {
	return binary.AppendUvarint(dst, uint64(fieldNumber<<3|wireType))
}
