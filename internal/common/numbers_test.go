package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	v, err := ParseUint[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)

	_, err = ParseUint[uint64]("18446744073709551616")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseUint[uint8]("256")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseUint[uint64]("-1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseUintFields(t *testing.T) {
	values, bad, err := ParseUintFields[uint64]("  50 98\t2 ")
	require.NoError(t, err)
	assert.Empty(t, bad)
	assert.Equal(t, []uint64{50, 98, 2}, values)

	_, bad, err = ParseUintFields[uint64]("50 x8 2")
	require.Error(t, err)
	assert.Equal(t, "x8", bad)

	values, _, err = ParseUintFields[uint64]("")
	require.NoError(t, err)
	assert.Empty(t, values)
}
