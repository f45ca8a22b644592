package state

import (
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/layout"
)

const (
	// NFTDataLen is the encoded length of NFTData.
	NFTDataLen = 49
	// ChildNFTDataLen is the encoded length of ChildNFTData.
	ChildNFTDataLen = 105
)

var nftDataLayout = layout.New("NFTData",
	layout.Field{Name: "is_initialized", Type: layout.Bool},
	layout.Field{Name: "mint", Type: layout.Identifier},
	layout.Field{Name: "last_breed_timestamp", Type: layout.UInt64},
	layout.Field{Name: "breed_count", Type: layout.UInt64},
)

var childNFTDataLayout = layout.New("ChildNFTData",
	layout.Field{Name: "is_initialized", Type: layout.Bool},
	layout.Field{Name: "child_mint", Type: layout.Identifier},
	layout.Field{Name: "parent_one_mint", Type: layout.Identifier},
	layout.Field{Name: "parent_two_mint", Type: layout.Identifier},
	layout.Field{Name: "mint_time", Type: layout.UInt64},
)

// NFTData is the breeding metadata of a single NFT.
type NFTData struct {
	IsInitialized      bool             `json:"isInitialized"`
	Mint               codec.Identifier `json:"mint"`
	LastBreedTimestamp uint64           `json:"lastBreedTimestamp,string"`
	BreedCount         uint64           `json:"breedCount,string"`
}

func (n *NFTData) Kind() Kind        { return KindNFTData }
func (n *NFTData) Len() int          { return NFTDataLen }
func (n *NFTData) Initialized() bool { return n.IsInitialized }

// Decode reads the leading NFTDataLen bytes of src. The receiver is left unchanged on error.
func (n *NFTData) Decode(src []byte) error {
	r, err := nftDataLayout.NewReader(src)
	if err != nil {
		return err
	}
	decoded := NFTData{
		IsInitialized:      r.Bool(),
		Mint:               r.Identifier(),
		LastBreedTimestamp: r.UInt64(),
		BreedCount:         r.UInt64(),
	}
	if err := r.Finish(); err != nil {
		return err
	}
	*n = decoded
	return nil
}

func (n *NFTData) Encode(dst []byte) error {
	w, err := nftDataLayout.NewWriter(dst)
	if err != nil {
		return err
	}
	w.Bool(n.IsInitialized)
	w.Identifier(n.Mint)
	w.UInt64(n.LastBreedTimestamp)
	w.UInt64(n.BreedCount)
	w.Finish()
	return nil
}

// ChildNFTData records the provenance of an NFT produced by breeding.
type ChildNFTData struct {
	IsInitialized bool             `json:"isInitialized"`
	ChildMint     codec.Identifier `json:"childMint"`
	ParentOneMint codec.Identifier `json:"parentOneMint"`
	ParentTwoMint codec.Identifier `json:"parentTwoMint"`
	MintTime      uint64           `json:"mintTime,string"`
}

func (c *ChildNFTData) Kind() Kind        { return KindChildNFTData }
func (c *ChildNFTData) Len() int          { return ChildNFTDataLen }
func (c *ChildNFTData) Initialized() bool { return c.IsInitialized }

// Decode reads the leading ChildNFTDataLen bytes of src. The receiver is left unchanged on error.
func (c *ChildNFTData) Decode(src []byte) error {
	r, err := childNFTDataLayout.NewReader(src)
	if err != nil {
		return err
	}
	decoded := ChildNFTData{
		IsInitialized: r.Bool(),
		ChildMint:     r.Identifier(),
		ParentOneMint: r.Identifier(),
		ParentTwoMint: r.Identifier(),
		MintTime:      r.UInt64(),
	}
	if err := r.Finish(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

func (c *ChildNFTData) Encode(dst []byte) error {
	w, err := childNFTDataLayout.NewWriter(dst)
	if err != nil {
		return err
	}
	w.Bool(c.IsInitialized)
	w.Identifier(c.ChildMint)
	w.Identifier(c.ParentOneMint)
	w.Identifier(c.ParentTwoMint)
	w.UInt64(c.MintTime)
	w.Finish()
	return nil
}
