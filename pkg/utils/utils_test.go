package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 1, date.Day())

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 34.82, RoundWithTwoDecimalPlace(34.8249))
	assert.Equal(t, 0.3333, RoundWithFourDecimalPlace(1.0/3))
	assert.True(t, math.IsNaN(RoundWithFourDecimalPlace(math.NaN())))
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	assert.Len(t, first, 8)
	assert.NotEqual(t, first, second)
}
