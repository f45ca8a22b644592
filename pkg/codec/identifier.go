package codec

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
)

// IdentifierLength is the byte size of an identifier.
const IdentifierLength = 32

// Identifier is an opaque 32-byte value such as an account key or a mint address.
// Its content is never interpreted, only stored and compared.
type Identifier [IdentifierLength]byte

// EmptyIdentifier is the all-zero identifier.
var EmptyIdentifier = Identifier{}

// NewIdentifier copies val into an identifier. val must be exactly 32 bytes.
func NewIdentifier(val []byte) (Identifier, error) {
	var id Identifier
	if len(val) != IdentifierLength {
		return id, errors.Wrapf(ErrInvalidIdentifier, "expected %d bytes but received %d", IdentifierLength, len(val))
	}
	copy(id[:], val)
	return id, nil
}

// ParseIdentifier parses base58 text, or hex text when prefixed with 0x.
func ParseIdentifier(s string) (Identifier, error) {
	if strings.HasPrefix(s, "0x") {
		decoded, err := hex.DecodeString(s[2:])
		if err != nil {
			return EmptyIdentifier, errors.Wrapf(ErrInvalidIdentifier, "%s", err)
		}
		return NewIdentifier(decoded)
	}
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return EmptyIdentifier, errors.Wrapf(ErrInvalidIdentifier, "%q is not base58", s)
	}
	return NewIdentifier(decoded)
}

// Bytes returns a copy of the identifier as a slice.
func (i Identifier) Bytes() []byte {
	result := make([]byte, IdentifierLength)
	copy(result, i[:])
	return result
}

// IsEmpty reports whether all bytes are zero.
func (i Identifier) IsEmpty() bool {
	return i == EmptyIdentifier
}

// String returns the base58 form.
func (i Identifier) String() string {
	return base58.Encode(i[:])
}

// Hex returns the hex form without prefix.
func (i Identifier) Hex() string {
	return hex.EncodeToString(i[:])
}

// MarshalText implements encoding.TextMarshaler.
func (i Identifier) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Identifier) UnmarshalText(input []byte) error {
	parsed, err := ParseIdentifier(string(input))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
