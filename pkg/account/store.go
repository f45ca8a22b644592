package account

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/codec"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/collection/bytes"
	"github.com/LiskHQ/lisk-nft-breeding/pkg/db"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	// ErrDataLengthChanged is returned on commit when a data window was resized.
	ErrDataLengthChanged = errors.New("account data length changed")
)

var prefixAccount = []byte{0x01}

func accountKey(key codec.Identifier) []byte {
	return bytes.Join(prefixAccount, key.Bytes())
}

// Store reads and writes accounts in the database.
type Store struct {
	database *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{
		database: database,
	}
}

func (s *Store) Get(key codec.Identifier) (*Account, error) {
	value, err := s.database.Get(accountKey(key))
	if errors.Is(err, db.ErrDataNotFound) {
		return nil, errors.Wrapf(ErrAccountNotFound, "%s", key)
	}
	if err != nil {
		return nil, err
	}
	acct := &Account{Key: key}
	if err := acct.Decode(value); err != nil {
		return nil, errors.Wrapf(err, "failed to decode account %s", key)
	}
	return acct, nil
}

func (s *Store) Has(key codec.Identifier) (bool, error) {
	return s.database.Exist(accountKey(key))
}

// Create stores a new account with a zero filled data window of dataLen bytes.
func (s *Store) Create(key, owner codec.Identifier, balance uint64, dataLen int) (*Account, error) {
	if dataLen < 0 {
		return nil, errors.Newf("invalid data length %d", dataLen)
	}
	exist, err := s.Has(key)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, errors.Wrapf(ErrAccountExists, "%s", key)
	}
	acct := &Account{
		Key:     key,
		Owner:   owner,
		Balance: balance,
		Data:    make([]byte, dataLen),
	}
	if err := s.database.Set(accountKey(key), acct.Encode()); err != nil {
		return nil, err
	}
	return acct, nil
}

// Iterate returns up to limit accounts in key order. limit -1 returns all.
func (s *Store) Iterate(limit int) ([]*Account, error) {
	reader := s.database.NewReader()
	defer reader.Close()
	kvs, err := reader.Iterate(prefixAccount, limit, false)
	if err != nil {
		return nil, err
	}
	accounts := make([]*Account, len(kvs))
	for i, kv := range kvs {
		key, err := codec.NewIdentifier(kv.Key()[len(prefixAccount):])
		if err != nil {
			return nil, err
		}
		acct := &Account{Key: key}
		if err := acct.Decode(kv.Value()); err != nil {
			return nil, errors.Wrapf(err, "failed to decode account %s", key)
		}
		accounts[i] = acct
	}
	return accounts, nil
}

// Keys returns up to limit account identifiers in key order without decoding the accounts.
func (s *Store) Keys(limit int) ([]codec.Identifier, error) {
	reader := s.database.NewReader()
	defer reader.Close()
	rawKeys, err := reader.IterateKey(prefixAccount, limit, false)
	if err != nil {
		return nil, err
	}
	keys := make([]codec.Identifier, len(rawKeys))
	for i, rawKey := range rawKeys {
		key, err := codec.NewIdentifier(rawKey[len(prefixAccount):])
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

// NewTx returns a transaction which collects account modifications.
func (s *Store) NewTx() *Tx {
	return &Tx{
		store:  s,
		loaded: map[codec.Identifier]*Account{},
		sizes:  map[codec.Identifier]int{},
		dirty:  map[codec.Identifier]bool{},
	}
}

// Tx caches loaded accounts and writes the modified ones together on Commit.
// A Tx is not safe for concurrent use.
type Tx struct {
	store  *Store
	loaded map[codec.Identifier]*Account
	sizes  map[codec.Identifier]int
	dirty  map[codec.Identifier]bool
	order  []codec.Identifier
}

// Load returns the account for key. The same key always yields the same instance.
func (tx *Tx) Load(key codec.Identifier) (*Account, error) {
	if acct, exist := tx.loaded[key]; exist {
		return acct, nil
	}
	acct, err := tx.store.Get(key)
	if err != nil {
		return nil, err
	}
	tx.loaded[key] = acct
	tx.sizes[key] = len(acct.Data)
	return acct, nil
}

// MarkDirty schedules the loaded account to be written on Commit.
func (tx *Tx) MarkDirty(acct *Account) error {
	loaded, exist := tx.loaded[acct.Key]
	if !exist || loaded != acct {
		return errors.Newf("account %s was not loaded by this transaction", acct.Key)
	}
	if !tx.dirty[acct.Key] {
		tx.dirty[acct.Key] = true
		tx.order = append(tx.order, acct.Key)
	}
	return nil
}

// Modified returns the keys marked dirty in the order they were marked.
func (tx *Tx) Modified() []codec.Identifier {
	return collection.Copy(tx.order)
}

// Commit writes all modified accounts in one batch. Nothing is written on error.
func (tx *Tx) Commit() error {
	if len(tx.order) == 0 {
		return nil
	}
	batch := tx.store.database.NewBatch()
	defer batch.Close()
	for _, key := range tx.order {
		acct := tx.loaded[key]
		if len(acct.Data) != tx.sizes[key] {
			return errors.Wrapf(ErrDataLengthChanged, "%s from %d to %d", key, tx.sizes[key], len(acct.Data))
		}
		if err := batch.Set(accountKey(key), acct.Encode()); err != nil {
			return err
		}
	}
	return tx.store.database.Write(batch)
}
