package models

import (
	"io"

	"fjacquet/activity-export/internal/logging"
)

// Parser defines the interface for raw activity readers.
type Parser interface {
	Parse(r io.Reader) ([]RawActivity, error)
	ParseFile(path string) ([]RawActivity, error)
	SetLogger(logger logging.Logger)
	ValidateFormat(file string) (bool, error)
}
