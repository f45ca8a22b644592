package processor

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
)

const (
	fieldSigner    = 1
	fieldAccounts  = 2
	fieldData      = 3
	fieldSignature = 4
)

var _ codec.EncodeDecodable = (*Transaction)(nil)

// Transaction carries one instruction together with the accounts it touches.
// Accounts[0] must be the signer.
type Transaction struct {
	Signer    codec.Identifier
	Signature []byte
	Accounts  []codec.Identifier
	Data      []byte
}

func (t *Transaction) writeUnsigned(writer *codec.Writer) {
	accounts := make([][]byte, len(t.Accounts))
	for i, acct := range t.Accounts {
		accounts[i] = acct.Bytes()
	}
	writer.WriteBytes(fieldSigner, t.Signer.Bytes())
	writer.WriteBytes(fieldAccounts, bytes.Join(accounts...))
	writer.WriteBytes(fieldData, t.Data)
}

// SigningBytes returns the bytes covered by the signature.
func (t *Transaction) SigningBytes() []byte {
	writer := codec.NewWriter()
	t.writeUnsigned(writer)
	return writer.Result()
}

func (t *Transaction) Encode() []byte {
	writer := codec.NewWriter()
	t.writeUnsigned(writer)
	writer.WriteBytes(fieldSignature, t.Signature)
	return writer.Result()
}

func (t *Transaction) Decode(data []byte) error {
	reader := codec.NewReader(data)
	signerBytes, err := reader.ReadBytes(fieldSigner, true)
	if err != nil {
		return errors.Wrap(err, "signer")
	}
	signer, err := codec.NewIdentifier(signerBytes)
	if err != nil {
		return errors.Wrap(err, "signer")
	}
	joined, err := reader.ReadBytes(fieldAccounts, false)
	if err != nil {
		return errors.Wrap(err, "accounts")
	}
	if len(joined)%codec.IdentifierLength != 0 {
		return errors.Wrapf(codec.ErrInvalidData, "accounts length %d is not a multiple of %d", len(joined), codec.IdentifierLength)
	}
	accounts := make([]codec.Identifier, len(joined)/codec.IdentifierLength)
	for i := range accounts {
		copy(accounts[i][:], joined[i*codec.IdentifierLength:])
	}
	payload, err := reader.ReadBytes(fieldData, false)
	if err != nil {
		return errors.Wrap(err, "data")
	}
	signature, err := reader.ReadBytes(fieldSignature, false)
	if err != nil {
		return errors.Wrap(err, "signature")
	}
	if reader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	t.Signer = signer
	t.Accounts = accounts
	t.Data = payload
	t.Signature = signature
	return nil
}

// Sign sets Signature with the ed25519 private key of the signer.
func (t *Transaction) Sign(privateKey []byte) error {
	signature, err := crypto.Sign(privateKey, t.SigningBytes())
	if err != nil {
		return err
	}
	t.Signature = signature
	return nil
}

// ID returns the hash of the encoded transaction.
func (t *Transaction) ID() codec.Hex {
	return crypto.Hash(t.Encode())
}
