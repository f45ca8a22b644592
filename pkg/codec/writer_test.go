package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustDecodeHex(v string) []byte {
	decoded, err := hex.DecodeString(v)
	if err != nil {
		panic(err)
	}
	return decoded
}

func TestWriteBytes(t *testing.T) {
	cases := []struct {
		input       []byte
		fieldNumber int
		result      string
	}{
		{
			input:       mustDecodeHex("e11a11364738225813f86ea85214400e5db08d6e"),
			fieldNumber: 1,
			result:      "0a14e11a11364738225813f86ea85214400e5db08d6e",
		},
		{
			input:       []byte{},
			fieldNumber: 3,
			result:      "1a00",
		},
	}
	for _, c := range cases {
		writer := NewWriter()
		writer.WriteBytes(c.fieldNumber, c.input)
		assert.Equal(t, mustDecodeHex(c.result), writer.Result())
		assert.Equal(t, len(writer.Result()), writer.Size())
	}
}

func TestWriteUInt(t *testing.T) {
	cases := []struct {
		input       uint64
		fieldNumber int
		result      string
	}{
		{input: 0, fieldNumber: 2, result: "1000"},
		{input: 300, fieldNumber: 2, result: "10ac02"},
		{input: ^uint64(0), fieldNumber: 1, result: "08ffffffffffffffffff01"},
	}
	for _, c := range cases {
		writer := NewWriter()
		writer.WriteUInt(c.fieldNumber, c.input)
		assert.Equal(t, mustDecodeHex(c.result), writer.Result())
	}
}
