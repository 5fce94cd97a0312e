package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string{})
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPairs(t *testing.T) {
	pairs, ok := Pairs([]uint64{79, 14, 55, 13})
	require.True(t, ok)
	assert.Equal(t, [][2]uint64{{79, 14}, {55, 13}}, pairs)

	pairs, ok = Pairs([]uint64{79, 14, 55})
	assert.False(t, ok)
	assert.Equal(t, [][2]uint64{{79, 14}}, pairs)

	pairs, ok = Pairs([]uint64{})
	assert.True(t, ok)
	assert.Empty(t, pairs)
}
