package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadUInt(t *testing.T) {
	cases := []struct {
		input       string
		fieldNumber int
		strict      bool
		result      uint64
		err         error
	}{
		{input: "10ac02", fieldNumber: 2, strict: true, result: 300},
		{input: "08ffffffffffffffffff01", fieldNumber: 1, strict: true, result: ^uint64(0)},
		{input: "08ffffffffffffffffff02", fieldNumber: 1, strict: true, err: ErrOutOfRange},
		{input: "088000", fieldNumber: 1, strict: true, err: ErrUnnecessaryLeadingBytes},
		{input: "0880", fieldNumber: 1, strict: true, err: ErrInvalidData},
		{input: "10ac02", fieldNumber: 1, strict: false, result: 0},
	}
	for _, testCase := range cases {
		reader := NewReader(mustDecodeHex(testCase.input))
		result, err := reader.ReadUInt(testCase.fieldNumber, testCase.strict)
		if testCase.err == nil {
			assert.NoError(t, err)
			assert.Equal(t, testCase.result, result)
		} else {
			assert.ErrorIs(t, err, testCase.err)
		}
	}
}

func TestReadBytes(t *testing.T) {
	reader := NewReader(mustDecodeHex("0a14e11a11364738225813f86ea85214400e5db08d6e"))
	result, err := reader.ReadBytes(1, true)
	assert.NoError(t, err)
	assert.Equal(t, mustDecodeHex("e11a11364738225813f86ea85214400e5db08d6e"), result)
	assert.False(t, reader.HasUnreadBytes())

	reader = NewReader(mustDecodeHex("0a14e11a"))
	_, err = reader.ReadBytes(1, true)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestReaderSequence(t *testing.T) {
	writer := NewWriter()
	writer.WriteBytes(1, []byte{1, 2, 3})
	writer.WriteUInt(2, 42)

	reader := NewReader(writer.Result())
	b, err := reader.ReadBytes(1, true)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.True(t, reader.HasUnreadBytes())
	u, err := reader.ReadUInt(2, true)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), u)
	_, err = reader.ReadUInt(3, true)
	assert.ErrorIs(t, err, ErrFieldNumberNotFound)
	assert.False(t, reader.HasUnreadBytes())
}
