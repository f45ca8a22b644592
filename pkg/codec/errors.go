package codec

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidData represents general invalid data.
	ErrInvalidData = errors.New("invalid data")
	// ErrOutOfRange represents logic accessing data in out of range.
	ErrOutOfRange = errors.New("out of range")
	// ErrNoTerminate represents a varint without termination bit.
	ErrNoTerminate = errors.New("no terminating bit found")
	// ErrUnexpectedFieldNumber represents field number not matching expected value.
	ErrUnexpectedFieldNumber = errors.New("unexpected field number found")
	// ErrFieldNumberNotFound represents missing field number.
	ErrFieldNumberNotFound = errors.New("expected field number does not exist")
	// ErrUnnecessaryLeadingBytes represents a varint which is not in the shortest form.
	ErrUnnecessaryLeadingBytes = errors.New("unnecessary leading bytes in varint")
	// ErrUnreadBytes represents extra bytes not read.
	ErrUnreadBytes = errors.New("unread bytes exist")
	// ErrInvalidIdentifier is returned when a text identifier does not decode to 32 bytes.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
