package processor

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/account"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/crypto"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/instruction"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/math"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/state"
)

// Account positions of UpdatePlatformFee.
const (
	feeSigner = iota
	feePlatform
	feeTreasury
	feeAccountCount
)

// Account positions of InitBreed.
const (
	breedSigner = iota
	breedPlatform
	breedTreasury
	breedParentOne
	breedParentTwo
	breedState
	breedChild
	breedChildMint
	breedAccountCount
)

func requireAccounts(accounts []codec.Identifier, count int) error {
	if len(accounts) < count {
		return errors.Wrapf(ErrNotEnoughAccounts, "expected %d but received %d", count, len(accounts))
	}
	return nil
}

func requireDistinct(accounts []codec.Identifier) error {
	if duplicate, found := collection.FirstDuplicate(accounts); found {
		return errors.Wrapf(ErrDuplicateAccount, "%s", duplicate)
	}
	return nil
}

// loadWritable loads an account which is owned by the program and rent exempt.
func (p *Processor) loadWritable(accountTx *account.Tx, key codec.Identifier) (*account.Account, error) {
	acct, err := accountTx.Load(key)
	if err != nil {
		return nil, err
	}
	if err := p.policy.CheckWritable(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (p *Processor) updatePlatformFee(accountTx *account.Tx, accounts []codec.Identifier, op *instruction.UpdatePlatformFee) error {
	if err := requireAccounts(accounts, feeAccountCount); err != nil {
		return err
	}
	if err := p.policy.CheckAuthority(accounts[feeSigner]); err != nil {
		return err
	}
	platformAcct, err := p.loadWritable(accountTx, accounts[feePlatform])
	if err != nil {
		return err
	}
	platform, err := state.UnpackUnchecked[state.PlatformData](platformAcct.Data)
	if err != nil {
		return errors.Wrapf(err, "platform %s", platformAcct.Key)
	}
	platform.IsInitialized = true
	platform.Treasury = accounts[feeTreasury]
	platform.PlatformFee = op.Fee
	if err := platform.Encode(platformAcct.Data); err != nil {
		return err
	}
	return accountTx.MarkDirty(platformAcct)
}

type parent struct {
	acct *account.Account
	data *state.NFTData
}

func (p *Processor) loadParent(accountTx *account.Tx, key codec.Identifier, now uint64) (*parent, error) {
	acct, err := accountTx.Load(key)
	if err != nil {
		return nil, err
	}
	if err := p.policy.CheckOwner(acct); err != nil {
		return nil, err
	}
	data, err := state.Unpack[state.NFTData](acct.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "parent %s", key)
	}
	elapsed := math.SafeSubWithMin(now, data.LastBreedTimestamp, 0)
	if elapsed < p.rules.CooldownSeconds {
		return nil, errors.Wrapf(ErrBreedCooldown, "%s bred at %d, %d seconds remaining", data.Mint, data.LastBreedTimestamp, p.rules.CooldownSeconds-elapsed)
	}
	if p.rules.MaxBreedCount > 0 && data.BreedCount >= p.rules.MaxBreedCount {
		return nil, errors.Wrapf(ErrBreedLimit, "%s bred %d times", data.Mint, data.BreedCount)
	}
	return &parent{acct: acct, data: data}, nil
}

func (p *parent) bred(accountTx *account.Tx, now uint64) error {
	count, ok := math.SafeAdd(p.data.BreedCount, 1)
	if !ok {
		return errors.Wrapf(ErrBreedLimit, "%s breed count overflows", p.data.Mint)
	}
	p.data.BreedCount = count
	p.data.LastBreedTimestamp = now
	if err := p.data.Encode(p.acct.Data); err != nil {
		return err
	}
	return accountTx.MarkDirty(p.acct)
}

// loadUninitialized loads a writable account whose record of kind has not been initialized yet.
func (p *Processor) loadUninitialized(accountTx *account.Tx, key codec.Identifier, kind state.Kind) (*account.Account, error) {
	acct, err := p.loadWritable(accountTx, key)
	if err != nil {
		return nil, err
	}
	record, err := kind.Decode(acct.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", kind, key)
	}
	if record.Initialized() {
		return nil, errors.Wrapf(ErrAlreadyInitialized, "%s %s", kind, key)
	}
	return acct, nil
}

// breedRandom derives the random value of a breeding from the mints and the time.
func breedRandom(childMint, parentOne, parentTwo codec.Identifier, now uint64) uint64 {
	seed := crypto.Hash(childMint.Bytes(), parentOne.Bytes(), parentTwo.Bytes(), bytes.FromUint64LE(now))
	return bytes.ToUint64LE(seed)
}

func (p *Processor) transfer(accountTx *account.Tx, from, to codec.Identifier, amount uint64) error {
	sender, err := accountTx.Load(from)
	if err != nil {
		return err
	}
	recipient, err := accountTx.Load(to)
	if err != nil {
		return err
	}
	senderBalance, ok := math.SafeSub(sender.Balance, amount)
	if !ok {
		return errors.Wrapf(ErrInsufficientFunds, "%s holds %d, requires %d", from, sender.Balance, amount)
	}
	recipientBalance, ok := math.SafeAdd(recipient.Balance, amount)
	if !ok {
		return errors.Wrapf(ErrBalanceOverflow, "%s", to)
	}
	sender.Balance = senderBalance
	recipient.Balance = recipientBalance
	if err := accountTx.MarkDirty(sender); err != nil {
		return err
	}
	return accountTx.MarkDirty(recipient)
}

func (p *Processor) initBreed(accountTx *account.Tx, accounts []codec.Identifier, op *instruction.InitBreed) error {
	if err := requireAccounts(accounts, breedAccountCount); err != nil {
		return err
	}
	if err := requireDistinct(accounts[:breedChildMint]); err != nil {
		return err
	}
	now := uint64(p.clock().Unix())

	platformAcct, err := accountTx.Load(accounts[breedPlatform])
	if err != nil {
		return err
	}
	if err := p.policy.CheckOwner(platformAcct); err != nil {
		return err
	}
	platform, err := state.Unpack[state.PlatformData](platformAcct.Data)
	if err != nil {
		return errors.Wrapf(err, "platform %s", platformAcct.Key)
	}
	if platform.Treasury != accounts[breedTreasury] {
		return errors.Wrapf(ErrTreasuryMismatch, "expected %s but received %s", platform.Treasury, accounts[breedTreasury])
	}
	if op.Payment < platform.PlatformFee {
		return errors.Wrapf(ErrInsufficientFee, "paid %d, fee is %d", op.Payment, platform.PlatformFee)
	}

	parentOne, err := p.loadParent(accountTx, accounts[breedParentOne], now)
	if err != nil {
		return err
	}
	parentTwo, err := p.loadParent(accountTx, accounts[breedParentTwo], now)
	if err != nil {
		return err
	}
	if parentOne.data.Mint == parentTwo.data.Mint {
		return errors.Wrapf(ErrSameParent, "%s", parentOne.data.Mint)
	}
	childMint := accounts[breedChildMint]
	if childMint == parentOne.data.Mint || childMint == parentTwo.data.Mint {
		return errors.Wrapf(ErrInvalidChildMint, "%s", childMint)
	}

	breedingAcct, err := p.loadUninitialized(accountTx, accounts[breedState], state.KindBreedingState)
	if err != nil {
		return err
	}
	childAcct, err := p.loadUninitialized(accountTx, accounts[breedChild], state.KindChildNFTData)
	if err != nil {
		return err
	}

	if err := p.transfer(accountTx, accounts[breedSigner], accounts[breedTreasury], op.Payment); err != nil {
		return err
	}
	if err := parentOne.bred(accountTx, now); err != nil {
		return err
	}
	if err := parentTwo.bred(accountTx, now); err != nil {
		return err
	}
	breeding := &state.BreedingState{
		IsInitialized: true,
		ChildMint:     childMint,
		RandomValue:   breedRandom(childMint, parentOne.data.Mint, parentTwo.data.Mint, now),
	}
	if err := breeding.Encode(breedingAcct.Data); err != nil {
		return errors.Wrapf(err, "breeding state %s", breedingAcct.Key)
	}
	if err := accountTx.MarkDirty(breedingAcct); err != nil {
		return err
	}
	child := &state.ChildNFTData{
		IsInitialized: true,
		ChildMint:     childMint,
		ParentOneMint: parentOne.data.Mint,
		ParentTwoMint: parentTwo.data.Mint,
		MintTime:      now,
	}
	if err := child.Encode(childAcct.Data); err != nil {
		return errors.Wrapf(err, "child %s", childAcct.Key)
	}
	return accountTx.MarkDirty(childAcct)
}
