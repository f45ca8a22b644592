package policy

import (
	"github.com/cockroachdb/errors"

	"github.com/LiskHQ/lisk-nft-breeding/pkg/math"
)

const (
	// AccountStorageOverhead is charged on top of the data length of every account.
	AccountStorageOverhead = 128

	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2
)

var ErrRentOverflow = errors.New("rent computation overflows")

// Rent holds the parameters deciding whether an account balance is large enough to stay alive.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  uint64
}

func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance returns (overhead + dataLen) * lamports per byte year * threshold.
func (r Rent) MinimumBalance(dataLen int) (uint64, error) {
	if dataLen < 0 {
		return 0, errors.Newf("invalid data length %d", dataLen)
	}
	size, ok := math.SafeAdd(AccountStorageOverhead, uint64(dataLen))
	if !ok {
		return 0, ErrRentOverflow
	}
	result, ok := math.SafeMulAll(size, r.LamportsPerByteYear, r.ExemptionThreshold)
	if !ok {
		return 0, ErrRentOverflow
	}
	return result, nil
}

// IsExempt returns true if balance covers the minimum balance of dataLen bytes.
func (r Rent) IsExempt(balance uint64, dataLen int) bool {
	minimum, err := r.MinimumBalance(dataLen)
	if err != nil {
		return false
	}
	return balance >= minimum
}
