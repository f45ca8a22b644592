package state

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies a record type.
type Kind uint8

const (
	KindPlatformData Kind = iota + 1
	KindNFTData
	KindChildNFTData
	KindBreedingState
)

var kindNames = map[Kind]string{
	KindPlatformData:  "platform",
	KindNFTData:       "nft",
	KindChildNFTData:  "child",
	KindBreedingState: "breeding",
}

// Kinds returns all record kinds.
func Kinds() []Kind {
	return []Kind{KindPlatformData, KindNFTData, KindChildNFTData, KindBreedingState}
}

// ParseKind returns the kind for a name such as "platform" or "nft".
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == normalized {
			return kind, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Len returns the fixed length of the kind, or 0 for an unknown kind.
func (k Kind) Len() int {
	switch k {
	case KindPlatformData:
		return PlatformDataLen
	case KindNFTData:
		return NFTDataLen
	case KindChildNFTData:
		return ChildNFTDataLen
	case KindBreedingState:
		return BreedingStateLen
	default:
		return 0
	}
}

// New returns a zero record of the kind.
func (k Kind) New() (Record, error) {
	switch k {
	case KindPlatformData:
		return &PlatformData{}, nil
	case KindNFTData:
		return &NFTData{}, nil
	case KindChildNFTData:
		return &ChildNFTData{}, nil
	case KindBreedingState:
		return &BreedingState{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%d", uint8(k))
	}
}

// Decode decodes src as a record of the kind.
func (k Kind) Decode(src []byte) (Record, error) {
	record, err := k.New()
	if err != nil {
		return nil, err
	}
	if err := record.Decode(src); err != nil {
		return nil, err
	}
	return record, nil
}
