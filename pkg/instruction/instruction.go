// Package instruction decodes the operation requested by a transaction payload.
//
// A payload is a single tag byte followed by a tag specific body without a length field:
//
//	tag 0  UpdatePlatformFee  amount u64 little-endian
//	tag 1  InitBreed          amount u64 little-endian
//
// Bytes following the body are ignored. Unknown tags are rejected.
package instruction

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
)

var (
	// ErrEmptyBuffer is returned when the payload has no tag byte.
	ErrEmptyBuffer = errors.New("empty instruction buffer")
	// ErrInvalidTag is returned when the tag is not a known operation.
	ErrInvalidTag = errors.New("invalid instruction tag")
	// ErrPayloadTooShort is returned when the body of a known tag is truncated.
	ErrPayloadTooShort = errors.New("instruction payload too short")
)

// Tag selects the operation.
type Tag uint8

const (
	TagUpdatePlatformFee Tag = 0
	TagInitBreed         Tag = 1
)

// AmountLen is the byte size of the amount body.
const AmountLen = 8

var tagNames = map[Tag]string{
	TagUpdatePlatformFee: "updatePlatformFee",
	TagInitBreed:         "initBreed",
}

func (t Tag) String() string {
	name, ok := tagNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseTag returns the tag of an operation name, case insensitive.
func ParseTag(name string) (Tag, error) {
	for tag, tagName := range tagNames {
		if strings.EqualFold(tagName, name) {
			return tag, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidTag, "unknown operation %q", name)
}

// Operation is one of *UpdatePlatformFee or *InitBreed.
type Operation interface {
	Tag() Tag
	Name() string
	Amount() uint64
	operation()
}

// UpdatePlatformFee sets the platform fee and treasury.
type UpdatePlatformFee struct {
	Fee uint64 `json:"amount,string"`
}

func (o *UpdatePlatformFee) Tag() Tag       { return TagUpdatePlatformFee }
func (o *UpdatePlatformFee) Name() string   { return TagUpdatePlatformFee.String() }
func (o *UpdatePlatformFee) Amount() uint64 { return o.Fee }
func (o *UpdatePlatformFee) operation()     {}

// InitBreed starts breeding two NFTs, paying amount.
type InitBreed struct {
	Payment uint64 `json:"amount,string"`
}

func (o *InitBreed) Tag() Tag       { return TagInitBreed }
func (o *InitBreed) Name() string   { return TagInitBreed.String() }
func (o *InitBreed) Amount() uint64 { return o.Payment }
func (o *InitBreed) operation()     {}

// Decode classifies buf into an operation.
func Decode(buf []byte) (Operation, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}
	tag, body := Tag(buf[0]), buf[1:]
	switch tag {
	case TagUpdatePlatformFee:
		amount, err := decodeAmount(tag, body)
		if err != nil {
			return nil, err
		}
		return &UpdatePlatformFee{Fee: amount}, nil
	case TagInitBreed:
		amount, err := decodeAmount(tag, body)
		if err != nil {
			return nil, err
		}
		return &InitBreed{Payment: amount}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidTag, "tag %d", uint8(tag))
	}
}

// New returns the operation for tag carrying amount.
func New(tag Tag, amount uint64) (Operation, error) {
	switch tag {
	case TagUpdatePlatformFee:
		return &UpdatePlatformFee{Fee: amount}, nil
	case TagInitBreed:
		return &InitBreed{Payment: amount}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidTag, "tag %d", uint8(tag))
	}
}

// Encode returns the canonical payload of op.
func Encode(op Operation) []byte {
	return bytes.Join([]byte{byte(op.Tag())}, bytes.FromUint64LE(op.Amount()))
}

func decodeAmount(tag Tag, body []byte) (uint64, error) {
	if len(body) < AmountLen {
		return 0, errors.Wrapf(ErrPayloadTooShort, "%s requires %d bytes but received %d", tag, AmountLen, len(body))
	}
	return bytes.ToUint64LE(body[:AmountLen]), nil
}
