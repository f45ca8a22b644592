// Package policy checks who may act on which accounts.
package policy

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/account"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
)

var (
	ErrInvalidSigner      = errors.New("invalid signer")
	ErrUnauthorized       = errors.New("signer is not the authority")
	ErrIncorrectProgramID = errors.New("account is not owned by the program")
	ErrNotRentExempt      = errors.New("account is not rent exempt")
)

type Policy struct {
	ProgramID codec.Identifier
	Authority codec.Identifier
	Rent      Rent
}

func New(programID, authority codec.Identifier, rent Rent) *Policy {
	return &Policy{
		ProgramID: programID,
		Authority: authority,
		Rent:      rent,
	}
}

// VerifySigner checks the ed25519 signature of signer over message.
func (p *Policy) VerifySigner(signer codec.Identifier, signature, message []byte) error {
	if err := crypto.VerifySignature(signer.Bytes(), signature, message); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInvalidSigner), "%s", signer)
	}
	return nil
}

func (p *Policy) CheckAuthority(signer codec.Identifier) error {
	if signer != p.Authority {
		return errors.Wrapf(ErrUnauthorized, "%s", signer)
	}
	return nil
}

func (p *Policy) CheckOwner(acct *account.Account) error {
	if acct.Owner != p.ProgramID {
		return errors.Wrapf(ErrIncorrectProgramID, "%s is owned by %s", acct.Key, acct.Owner)
	}
	return nil
}

func (p *Policy) CheckRentExempt(acct *account.Account) error {
	if !p.Rent.IsExempt(acct.Balance, len(acct.Data)) {
		minimum, _ := p.Rent.MinimumBalance(len(acct.Data))
		return errors.Wrapf(ErrNotRentExempt, "%s holds %d, requires %d", acct.Key, acct.Balance, minimum)
	}
	return nil
}

// CheckWritable runs CheckOwner and CheckRentExempt.
func (p *Policy) CheckWritable(acct *account.Account) error {
	if err := p.CheckOwner(acct); err != nil {
		return err
	}
	return p.CheckRentExempt(acct)
}
