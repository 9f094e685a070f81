// Package jsonparser reads provider activities exported as JSON.
package jsonparser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/parser"
	"fjacquet/activity-export/internal/parsererror"
)

const expectedFormat = "JSON activity array or {\"activities\": [...]}"

// envelope is the paginated API response shape.
type envelope struct {
	Activities []models.RawActivity `json:"activities"`
	Results    []models.RawActivity `json:"results"`
}

// Parse reads a JSON array of activities, or an object wrapping it under
// "activities" or "results". Null fields read as empty.
func Parse(r io.Reader) ([]models.RawActivity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       parser.FromReader,
			ExpectedFormat: expectedFormat,
			Msg:            "input is empty",
		}
	}

	var activities []models.RawActivity
	switch data[0] {
	case '[':
		err = json.Unmarshal(data, &activities)
	case '{':
		var env envelope
		err = json.Unmarshal(data, &env)
		activities = env.Activities
		if activities == nil {
			activities = env.Results
		}
	default:
		return nil, &parsererror.InvalidFormatError{
			FilePath:             parser.FromReader,
			ExpectedFormat:       expectedFormat,
			ActualContentSnippet: snippet(data),
			Msg:                  "input is not a JSON array or object",
		}
	}
	if err != nil {
		return nil, decodeError(err, data)
	}

	if err := parser.ValidateActivities(activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func decodeError(err error, data []byte) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &parsererror.DataExtractionError{
			FilePath:  parser.FromReader,
			FieldName: typeErr.Field,
			Reason:    fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
		}
	}
	return &parsererror.InvalidFormatError{
		FilePath:             parser.FromReader,
		ExpectedFormat:       expectedFormat,
		ActualContentSnippet: snippet(data),
		Msg:                  "malformed JSON",
		Err:                  err,
	}
}

func snippet(data []byte) string {
	const max = 40
	if len(data) > max {
		return string(data[:max])
	}
	return string(data)
}
