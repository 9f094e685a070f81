// Package csvparser reads provider activities exported as CSV, one column
// per activity field with the JSON field names as headers.
package csvparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/parser"
	"fjacquet/activity-export/internal/parsererror"
)

const expectedFormat = "CSV with at least id and type columns"

var requiredColumns = []string{"id", "type"}

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads activities from CSV. Unknown columns are ignored and missing
// optional columns read as empty.
func Parse(r io.Reader) ([]models.RawActivity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       parser.FromReader,
			ExpectedFormat: expectedFormat,
			Msg:            "cannot read CSV header",
			Err:            err,
		}
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:             parser.FromReader,
			ExpectedFormat:       expectedFormat,
			ActualContentSnippet: strings.Join(header, ","),
			Msg:                  fmt.Sprintf("missing columns %s", strings.Join(missing, ", ")),
		}
	}

	var activities []models.RawActivity
	if err := gocsv.UnmarshalBytes(data, &activities); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       parser.FromReader,
			ExpectedFormat: expectedFormat,
			Msg:            "malformed CSV",
			Err:            err,
		}
	}

	if err := parser.ValidateActivities(activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// missingColumns returns the required columns absent from header. Header
// names must match the field tags exactly, so only surrounding whitespace
// is forgiven.
func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
