package state

import (
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/layout"
)

// BreedingStateLen is the encoded length of BreedingState.
const BreedingStateLen = 41

var breedingStateLayout = layout.New("BreedingState",
	layout.Field{Name: "is_initialized", Type: layout.Bool},
	layout.Field{Name: "child_mint", Type: layout.Identifier},
	layout.Field{Name: "random_value", Type: layout.UInt64},
)

// BreedingState is the in-flight state of a breeding which is about to produce ChildMint.
type BreedingState struct {
	IsInitialized bool             `json:"isInitialized"`
	ChildMint     codec.Identifier `json:"childMint"`
	RandomValue   uint64           `json:"randomValue,string"`
}

func (b *BreedingState) Kind() Kind        { return KindBreedingState }
func (b *BreedingState) Len() int          { return BreedingStateLen }
func (b *BreedingState) Initialized() bool { return b.IsInitialized }

// Decode reads the leading BreedingStateLen bytes of src. The receiver is left unchanged on error.
func (b *BreedingState) Decode(src []byte) error {
	r, err := breedingStateLayout.NewReader(src)
	if err != nil {
		return err
	}
	decoded := BreedingState{
		IsInitialized: r.Bool(),
		ChildMint:     r.Identifier(),
		RandomValue:   r.UInt64(),
	}
	if err := r.Finish(); err != nil {
		return err
	}
	*b = decoded
	return nil
}

func (b *BreedingState) Encode(dst []byte) error {
	w, err := breedingStateLayout.NewWriter(dst)
	if err != nil {
		return err
	}
	w.Bool(b.IsInitialized)
	w.Identifier(b.ChildMint)
	w.UInt64(b.RandomValue)
	w.Finish()
	return nil
}
