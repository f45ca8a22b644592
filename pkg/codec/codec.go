// Package codec implements the protobuf-style envelope encoding used for persisted accounts
// and the 32-byte identifier type shared by every record.
package codec

// Encodable is interface for struct which is encodable.
type Encodable interface {
	Encode() []byte
}

// Decodable is interface for struct which is decodable.
type Decodable interface {
	Decode([]byte) error
}

// EncodeDecodable can encode and decode.
type EncodeDecodable interface {
	Encodable
	Decodable
}
