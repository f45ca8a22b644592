package codec

import (
	"encoding/binary"
)

// Writer is responsible for writing data in protobuf protocol.
type Writer struct {
	result []byte
}

// NewWriter returns a new instances of a writer.
func NewWriter() *Writer {
	return &Writer{
		result: []byte{},
	}
}

// WriteBytes writes a length prefixed byte slice.
func (w *Writer) WriteBytes(fieldNumber int, data []byte) {
	w.result = appendKey(w.result, wireTypeBytes, fieldNumber)
	w.result = binary.AppendUvarint(w.result, uint64(len(data)))
	w.result = append(w.result, data...)
}

// WriteUInt writes uint to result.
func (w *Writer) WriteUInt(fieldNumber int, data uint64) {
	w.result = appendKey(w.result, wireTypeVarint, fieldNumber)
	w.result = binary.AppendUvarint(w.result, data)
}

// Result returns the written bytes.
func (w *Writer) Result() []byte {
	return w.result
}

// Size returns written size.
func (w *Writer) Size() int {
	return len(w.result)
}
