package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "basic",
			err: &InvalidFormatError{
				FilePath:       "activities.json",
				ExpectedFormat: "JSON activity array",
				Msg:            "unexpected token",
			},
			expected: "invalid format in file 'activities.json': unexpected token. Expected: JSON activity array",
		},
		{
			name: "with snippet",
			err: &InvalidFormatError{
				FilePath:             "activities.csv",
				ExpectedFormat:       "CSV with id,type,amount columns",
				ActualContentSnippet: "foo;bar",
				Msg:                  "missing header",
			},
			expected: "invalid format in file 'activities.csv': missing header. Expected: CSV with id,type,amount columns. Content snippet: 'foo;bar'",
		},
		{
			name: "with cause",
			err: &InvalidFormatError{
				FilePath:       "x.json",
				ExpectedFormat: "JSON",
				Msg:            "decode failed",
				Err:            errors.New("EOF"),
			},
			expected: "invalid format in file 'x.json': decode failed. Expected: JSON: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidFormatError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("reading input: %w", &InvalidFormatError{FilePath: "f", Err: cause})

	var target *InvalidFormatError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "f", target.FilePath)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{FilePath: "a.csv", FieldName: "id", Reason: "empty value"}
	assert.Equal(t, "data extraction failed in file 'a.csv' for field 'id': empty value", err.Error())

	err.RawDataSnippet = "row 3"
	assert.Equal(t, "data extraction failed in file 'a.csv' for field 'id': empty value. Raw data snippet: 'row 3'", err.Error())
}

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Format: "xlsx", Supported: []string{"csv", "ofx", "qfx"}}
	assert.Equal(t, "unsupported export format 'xlsx' (supported: [csv ofx qfx])", err.Error())

	var target *UnsupportedFormatError
	assert.True(t, errors.As(fmt.Errorf("flag: %w", err), &target))
}
