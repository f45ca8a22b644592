// Package account persists program accounts keyed by identifier.
//
// An account holds the owning program, a balance and a fixed size data window
// which carries one of the records defined in package state.
package account

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
)

const (
	fieldOwner   = 1
	fieldBalance = 2
	fieldData    = 3
)

var _ codec.EncodeDecodable = (*Account)(nil)

// Account is the stored envelope of a single account.
type Account struct {
	Key     codec.Identifier `json:"key"`
	Owner   codec.Identifier `json:"owner"`
	Balance uint64           `json:"balance,string"`
	Data    []byte           `json:"data"`
}

// Encode returns the envelope bytes. Key is not part of the envelope.
func (a *Account) Encode() []byte {
	writer := codec.NewWriter()
	writer.WriteBytes(fieldOwner, a.Owner.Bytes())
	writer.WriteUInt(fieldBalance, a.Balance)
	writer.WriteBytes(fieldData, a.Data)
	return writer.Result()
}

func (a *Account) Decode(data []byte) error {
	reader := codec.NewReader(data)
	owner, err := reader.ReadBytes(fieldOwner, true)
	if err != nil {
		return errors.Wrap(err, "owner")
	}
	ownerID, err := codec.NewIdentifier(owner)
	if err != nil {
		return errors.Wrap(err, "owner")
	}
	balance, err := reader.ReadUInt(fieldBalance, false)
	if err != nil {
		return errors.Wrap(err, "balance")
	}
	window, err := reader.ReadBytes(fieldData, false)
	if err != nil {
		return errors.Wrap(err, "data")
	}
	if reader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	a.Owner = ownerID
	a.Balance = balance
	a.Data = window
	return nil
}

// Copy returns a deep copy of the account.
func (a *Account) Copy() *Account {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return &Account{
		Key:     a.Key,
		Owner:   a.Owner,
		Balance: a.Balance,
		Data:    data,
	}
}
