// Package processor applies signed transactions to the account store.
package processor

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/account"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/instruction"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/log"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/policy"
)

var (
	ErrNotEnoughAccounts  = errors.New("not enough accounts")
	ErrSignerMismatch     = errors.New("first account must be the signer")
	ErrDuplicateAccount   = errors.New("account is passed more than once")
	ErrTreasuryMismatch   = errors.New("treasury does not match the platform")
	ErrInsufficientFee    = errors.New("payment is lower than the platform fee")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrBalanceOverflow    = errors.New("balance overflows")
	ErrSameParent         = errors.New("parents must be different NFTs")
	ErrInvalidChildMint   = errors.New("child mint must differ from the parent mints")
	ErrBreedCooldown      = errors.New("parent is still cooling down")
	ErrBreedLimit         = errors.New("parent reached the breed limit")
	ErrAlreadyInitialized = errors.New("account is already initialized")
)

// BreedingRules restricts how often a parent NFT can breed.
type BreedingRules struct {
	CooldownSeconds uint64
	// MaxBreedCount 0 means unlimited.
	MaxBreedCount uint64
}

// Option configures a Processor.
type Option func(*Processor)

func WithClock(clock func() time.Time) Option {
	return func(p *Processor) {
		p.clock = clock
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(p *Processor) {
		p.metrics = metrics
	}
}

// Processor verifies and applies transactions. Process calls are serialized.
type Processor struct {
	mutex   *sync.Mutex
	store   *account.Store
	policy  *policy.Policy
	rules   BreedingRules
	logger  log.Logger
	metrics *Metrics
	clock   func() time.Time
	entropy io.Reader
}

func New(store *account.Store, accessPolicy *policy.Policy, rules BreedingRules, logger log.Logger, opts ...Option) *Processor {
	p := &Processor{
		mutex:   new(sync.Mutex),
		store:   store,
		policy:  accessPolicy,
		rules:   rules,
		logger:  logger,
		clock:   time.Now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics(nil)
	}
	return p
}

// Process verifies the signature, decodes the instruction and applies it.
// Either every account modification is committed or none is.
func (p *Processor) Process(ctx context.Context, tx *Transaction) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	started := p.clock()
	id := ulid.MustNew(ulid.Timestamp(started), p.entropy)
	logger := p.logger.With("processID", id.String(), "signer", tx.Signer.String())

	operation := operationUnknown
	op, err := p.process(ctx, logger, tx)
	if op != nil {
		operation = op.Name()
	}
	p.metrics.observe(operation, err, started)
	if err != nil {
		logger.Warningf("Failed to process %s: %v", operation, err)
		return err
	}
	logger.Infof("Processed %s with amount %d", operation, op.Amount())
	return nil
}

func (p *Processor) process(ctx context.Context, logger log.Logger, tx *Transaction) (instruction.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(tx.Accounts) == 0 {
		return nil, errors.Wrap(ErrNotEnoughAccounts, "signer account is required")
	}
	if tx.Accounts[0] != tx.Signer {
		return nil, errors.Wrapf(ErrSignerMismatch, "%s", tx.Accounts[0])
	}
	if err := p.policy.VerifySigner(tx.Signer, tx.Signature, tx.SigningBytes()); err != nil {
		return nil, err
	}
	op, err := instruction.Decode(tx.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode instruction")
	}

	accountTx := p.store.NewTx()
	switch o := op.(type) {
	case *instruction.UpdatePlatformFee:
		err = p.updatePlatformFee(accountTx, tx.Accounts, o)
	case *instruction.InitBreed:
		err = p.initBreed(accountTx, tx.Accounts, o)
	default:
		err = errors.Wrapf(instruction.ErrInvalidTag, "unsupported operation %s", op.Name())
	}
	if err != nil {
		return op, errors.Wrapf(err, "failed to execute %s", op.Name())
	}
	if err := ctx.Err(); err != nil {
		return op, err
	}
	if err := accountTx.Commit(); err != nil {
		return op, errors.Wrapf(err, "failed to commit %s", op.Name())
	}
	logger.Debugf("Committed accounts %v", accountTx.Modified())
	return op, nil
}
