package xlsparser

import (
	"bytes"
	"testing"
	"time"

	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/parser"
	"finflow/bankfeed/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsPassword(t *testing.T) {
	p := New(logging.NewMockLogger())

	_, err := p.Parse(bytes.NewReader(nil), parser.Options{Password: "secret"})
	require.Error(t, err)

	var formatErr *parsererror.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "xls", formatErr.Format)
	assert.Contains(t, err.Error(), "encrypted")
}

func TestParseRejectsGarbageInput(t *testing.T) {
	p := New(logging.NewMockLogger())

	_, err := p.Parse(bytes.NewReader([]byte("not a BIFF container")), parser.Options{})
	require.Error(t, err)

	var formatErr *parsererror.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "xls", formatErr.Format)
}

func TestParseRejectsTruncatedOLE2Header(t *testing.T) {
	p := New(logging.NewMockLogger())

	header := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	_, err := p.Parse(bytes.NewReader(header), parser.Options{})
	assert.Error(t, err)
}

func TestParseCellDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"rendered date", "20 Jan 2024", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), true},
		{"serial day number", "45311", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), true},
		{"fractional serial keeps the day", "45311.5", time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC), true},
		{"serial out of range", "123", time.Time{}, false},
		{"narration text", "TRANSFER TO 12345", time.Time{}, false},
		{"blank", "", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCellDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
