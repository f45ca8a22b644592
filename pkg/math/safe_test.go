package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeAdd(t *testing.T) {
	_, ok := SafeAdd(math.MaxUint64, math.MaxUint64)
	assert.False(t, ok)
	res, ok := SafeAdd(1000000000000, 2000000000000)
	assert.True(t, ok)
	assert.Equal(t, uint64(3000000000000), res)
}

func TestSafeSub(t *testing.T) {
	_, ok := SafeSub(1000000000000, 2000000000000)
	assert.False(t, ok)

	res, ok := SafeSub(2000000000000, 1000000000000)
	assert.True(t, ok)
	assert.Equal(t, uint64(1000000000000), res)
}

func TestSafeMul(t *testing.T) {
	_, ok := SafeMul(1000000000000, math.MaxUint64)
	assert.False(t, ok)

	res, ok := SafeMul(2000000000000, 3)
	assert.True(t, ok)
	assert.Equal(t, uint64(6000000000000), res)
}

func TestSafeMulAll(t *testing.T) {
	res, ok := SafeMulAll(169, 3480, 2)
	assert.True(t, ok)
	assert.Equal(t, uint64(1176240), res)

	res, ok = SafeMulAll()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), res)

	_, ok = SafeMulAll(math.MaxUint32, math.MaxUint32, 2)
	assert.False(t, ok)
}

func TestSafeSubWithMin(t *testing.T) {
	assert.Equal(t, uint64(0), SafeSubWithMin(uint64(5), uint64(10), 0))
	assert.Equal(t, uint64(5), SafeSubWithMin(uint64(10), uint64(5), 0))
	assert.Equal(t, uint32(7), SafeSubWithMin(uint32(1), uint32(2), 7))
}
