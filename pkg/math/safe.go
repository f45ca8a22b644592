// Package math provides overflow checked arithmetic for balances, fees and counters.
package math

import "math/bits"

// SafeSub returns x-y and false on underflow.
func SafeSub(x, y uint64) (uint64, bool) {
	diff, borrowOut := bits.Sub64(x, y, 0)
	return diff, borrowOut == 0
}

// SafeAdd returns x+y and false on overflow.
func SafeAdd(x, y uint64) (uint64, bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut == 0
}

// SafeMul returns x*y and false on overflow.
func SafeMul(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi == 0
}

// SafeMulAll multiplies all values and returns false if any step overflows.
func SafeMulAll(vals ...uint64) (uint64, bool) {
	result := uint64(1)
	for _, v := range vals {
		var ok bool
		result, ok = SafeMul(result, v)
		if !ok {
			return 0, false
		}
	}
	return result, true
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SafeSubWithMin returns x - y, or min if y is greater than x.
func SafeSubWithMin[T UInt](x, y, min T) T {
	if x < y {
		return min
	}
	return x - y
}
