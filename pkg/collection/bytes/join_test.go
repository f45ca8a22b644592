package bytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 7, 3}, Join([]byte{1, 2, 3, 4, 5, 6, 7, 7}, []byte{3}))
	assert.Equal(t, []byte{}, Join())
	assert.Equal(t, []byte{9}, Join(nil, []byte{9}, []byte{}))
}
