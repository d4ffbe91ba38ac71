package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementDate(t *testing.T) {
	date, err := ParseStatementDate("20 Jan 2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseStatementDate("2 Jan 2024")
	require.NoError(t, err)
	assert.Equal(t, 2, date.Day())
}

func TestParseStatementDateRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "20 Jan"},
		{"empty", ""},
		{"garbage", "not a date!!"},
		{"wrong layout", "2024-01-20T00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatementDate(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseRenderedDate(t *testing.T) {
	for _, input := range []string{"20 Jan 2024", "20/01/2024", "2024-01-20", "20.01.2024"} {
		date, ok := ParseRenderedDate(input)
		require.True(t, ok, "expected %q to parse", input)
		assert.Equal(t, 2024, date.Year())
		assert.Equal(t, time.January, date.Month())
		assert.Equal(t, 20, date.Day())
	}

	_, ok := ParseRenderedDate("Statement Summary")
	assert.False(t, ok)
	_, ok = ParseRenderedDate("")
	assert.False(t, ok)
}

func TestFromExcelSerial(t *testing.T) {
	// 2024-01-20 is serial day 45311 in the 1900 date system.
	date := FromExcelSerial(45311)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 20, date.Day())
}
