// Package bytes provides utility functions for byte slices.
package bytes

import "bytes"

// NewReader returns a new Reader reading from b.
func NewReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
