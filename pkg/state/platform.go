package state

import (
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/layout"
)

// PlatformDataLen is the encoded length of PlatformData.
const PlatformDataLen = 41

var platformDataLayout = layout.New("PlatformData",
	layout.Field{Name: "is_initialized", Type: layout.Bool},
	layout.Field{Name: "treasury", Type: layout.Identifier},
	layout.Field{Name: "platform_fee", Type: layout.UInt64},
)

// PlatformData holds the platform configuration: where fees go and how much they are.
type PlatformData struct {
	IsInitialized bool             `json:"isInitialized"`
	Treasury      codec.Identifier `json:"treasury"`
	PlatformFee   uint64           `json:"platformFee,string"`
}

func (p *PlatformData) Kind() Kind        { return KindPlatformData }
func (p *PlatformData) Len() int          { return PlatformDataLen }
func (p *PlatformData) Initialized() bool { return p.IsInitialized }

// Decode reads the leading PlatformDataLen bytes of src. The receiver is left unchanged on error.
func (p *PlatformData) Decode(src []byte) error {
	r, err := platformDataLayout.NewReader(src)
	if err != nil {
		return err
	}
	decoded := PlatformData{
		IsInitialized: r.Bool(),
		Treasury:      r.Identifier(),
		PlatformFee:   r.UInt64(),
	}
	if err := r.Finish(); err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Encode writes p into the leading PlatformDataLen bytes of dst.
func (p *PlatformData) Encode(dst []byte) error {
	w, err := platformDataLayout.NewWriter(dst)
	if err != nil {
		return err
	}
	w.Bool(p.IsInitialized)
	w.Identifier(p.Treasury)
	w.UInt64(p.PlatformFee)
	w.Finish()
	return nil
}
