package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstDuplicate(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		list  []int
		want  int
		found bool
	}{
		{
			list:  []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:  1,
			found: true,
		},
		{
			list: []int{1, 2, 3, 4, 5},
		},
		{
			list:  []int{1, 5, 2, 3, 2, 4, 5},
			want:  2,
			found: true,
		},
		{
			list: []int{},
		},
	}

	for _, testCase := range testCases {
		result, found := FirstDuplicate(testCase.list)
		assert.Equal(testCase.found, found)
		assert.Equal(testCase.want, result)
	}
}

func TestFirstDuplicateArray(t *testing.T) {
	list := [][4]byte{{1}, {2}, {0, 1}, {2}}
	result, found := FirstDuplicate(list)
	assert.True(t, found)
	assert.Equal(t, [4]byte{2}, result)
}
